package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/osiview/internal/osi"
	"github.com/opencode-ai/osiview/internal/theme"
	"github.com/opencode-ai/osiview/internal/tui/components"
	"github.com/opencode-ai/osiview/internal/tui/styles"
)

const layerCardWidth = 72

var layersProtocol string

func init() {
	rootCmd.AddCommand(layersCmd)
	layersCmd.Flags().StringVar(&layersProtocol, "protocol", "", "only layers listing this protocol")
}

var layersCmd = &cobra.Command{
	Use:   "layers [number|name]",
	Short: "Print the OSI layers",
	Long: `Print the seven OSI layers from Application down to Physical.

Pass a layer number (4, L4) or name (transport) to print its details, or
--protocol to find the layers a protocol belongs to.`,
	Example: `  osiview layers
  osiview layers 3
  osiview layers --protocol tcp --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			layer, err := osi.Lookup(args[0])
			if err != nil {
				return &PreflightError{
					Message:  err.Error(),
					Hint:     "Layers are numbered 1 (Physical) to 7 (Application)",
					NextStep: "osiview layers",
				}
			}
			return writeLayerDetail(commandContext(cmd), layer)
		}

		layers := osi.Layers()
		if layersProtocol != "" {
			layers = osi.FindByProtocol(layersProtocol)
		}
		return writeLayerList(commandContext(cmd), layers)
	},
}

func writeLayerList(ctx context.Context, layers []osi.Layer) error {
	if IsStructuredOutput() {
		if layers == nil {
			layers = []osi.Layer{}
		}
		return WriteOutput(stdout, layers)
	}
	if len(layers) == 0 {
		fmt.Fprintln(stdout, components.EmptyLayersFiltered(layersProtocol).Render(staticStyles(ctx)))
		return nil
	}

	rows := make([][]string, 0, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		rows = append(rows, []string{
			strconv.Itoa(layer.Number),
			layer.Name,
			layer.PDU,
			formatGroup(layer.Group()),
			strings.Join(layer.Protocols, ", "),
		})
	}
	return writeTable(stdout, []string{"#", "LAYER", "PDU", "GROUP", "PROTOCOLS"}, rows)
}

func writeLayerDetail(ctx context.Context, layer osi.Layer) error {
	if IsStructuredOutput() {
		return WriteOutput(stdout, layer)
	}
	fmt.Fprintln(stdout, components.RenderLayerCard(staticStyles(ctx), layer, layerCardWidth))
	return nil
}

// staticStyles resolves styles for one-shot output. There is no visual
// root outside the TUI, so the resolver runs headless and yields the
// fallback theme.
func staticStyles(ctx context.Context) styles.Styles {
	res := theme.NewResolver(theme.Environment{}, logger).Resolve(ctx)
	logger.Debug().Str("theme", res.Theme.String()).Str("source", string(res.Source)).Msg("static render")
	return styles.ForTheme(res.Theme)
}
