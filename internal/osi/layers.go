// Package osi holds the seven layers of the OSI reference model.
package osi

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownLayer is returned for layer numbers or names outside the model.
var ErrUnknownLayer = errors.New("unknown OSI layer")

// Group splits the stack into media and host layers.
type Group string

// Layer groups.
const (
	GroupMedia Group = "media"
	GroupHost  Group = "host"
)

// Layer describes one OSI layer.
type Layer struct {
	Number    int      `json:"number" yaml:"number"`
	Name      string   `json:"name" yaml:"name"`
	PDU       string   `json:"pdu" yaml:"pdu"`
	Function  string   `json:"function" yaml:"function"`
	Protocols []string `json:"protocols" yaml:"protocols"`
	Devices   []string `json:"devices,omitempty" yaml:"devices,omitempty"`
}

// Group returns GroupMedia for layers 1-3 and GroupHost for 4-7.
func (l Layer) Group() Group {
	if l.Number <= 3 {
		return GroupMedia
	}
	return GroupHost
}

// Title returns "L<n> <Name>".
func (l Layer) Title() string {
	return fmt.Sprintf("L%d %s", l.Number, l.Name)
}

// Count is the number of layers in the model.
const Count = 7

var layers = [Count]Layer{
	{
		Number:    1,
		Name:      "Physical",
		PDU:       "Bit",
		Function:  "Transmits raw bits over a physical medium: voltages, light pulses or radio waves.",
		Protocols: []string{"Ethernet PHY", "USB", "Bluetooth PHY", "DSL", "IEEE 802.11 PHY"},
		Devices:   []string{"Hub", "Repeater", "Cable", "Modem"},
	},
	{
		Number:    2,
		Name:      "Data Link",
		PDU:       "Frame",
		Function:  "Frames data for node-to-node delivery on one link, with MAC addressing and error detection.",
		Protocols: []string{"Ethernet", "Wi-Fi", "PPP", "ARP", "VLAN"},
		Devices:   []string{"Switch", "Bridge", "NIC"},
	},
	{
		Number:    3,
		Name:      "Network",
		PDU:       "Packet",
		Function:  "Routes packets between networks using logical addressing.",
		Protocols: []string{"IPv4", "IPv6", "ICMP", "IPsec", "OSPF", "BGP"},
		Devices:   []string{"Router", "Layer 3 switch"},
	},
	{
		Number:    4,
		Name:      "Transport",
		PDU:       "Segment",
		Function:  "Provides end-to-end delivery, ports, segmentation, flow control and reliability.",
		Protocols: []string{"TCP", "UDP", "QUIC", "SCTP"},
		Devices:   []string{"Firewall", "Load balancer"},
	},
	{
		Number:    5,
		Name:      "Session",
		PDU:       "Data",
		Function:  "Opens, manages and closes dialogues between applications.",
		Protocols: []string{"NetBIOS", "RPC", "PPTP", "SOCKS"},
	},
	{
		Number:    6,
		Name:      "Presentation",
		PDU:       "Data",
		Function:  "Translates, encrypts and compresses data so applications can read it.",
		Protocols: []string{"TLS", "SSL", "MIME", "JPEG", "ASCII"},
	},
	{
		Number:    7,
		Name:      "Application",
		PDU:       "Data",
		Function:  "Exposes network services directly to end-user software.",
		Protocols: []string{"HTTP", "DNS", "SMTP", "FTP", "SSH", "DHCP"},
		Devices:   []string{"Proxy", "Gateway"},
	},
}

// Layers returns all layers ordered from Physical (1) to Application (7).
// The result is a copy and may be modified.
func Layers() []Layer {
	out := make([]Layer, 0, Count)
	for _, l := range layers {
		out = append(out, clone(l))
	}
	return out
}

// ByNumber returns layer n (1-7).
func ByNumber(n int) (Layer, error) {
	if n < 1 || n > Count {
		return Layer{}, fmt.Errorf("%w: %d (want 1-%d)", ErrUnknownLayer, n, Count)
	}
	return clone(layers[n-1]), nil
}

// ByName returns the layer whose name matches case-insensitively.
// Spaces and dashes are ignored, so "datalink" and "data-link" both match.
func ByName(name string) (Layer, error) {
	want := normalize(name)
	for _, l := range layers {
		if normalize(l.Name) == want {
			return clone(l), nil
		}
	}
	return Layer{}, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
}

// Lookup resolves a layer by number ("4", "L4") or name.
func Lookup(ref string) (Layer, error) {
	ref = strings.TrimSpace(ref)
	trimmed := strings.TrimPrefix(strings.ToUpper(ref), "L")
	var n int
	if _, err := fmt.Sscanf(trimmed, "%d", &n); err == nil && fmt.Sprint(n) == trimmed {
		return ByNumber(n)
	}
	return ByName(ref)
}

// FindByProtocol returns every layer listing protocol, matched case-insensitively.
func FindByProtocol(protocol string) []Layer {
	want := strings.ToLower(strings.TrimSpace(protocol))
	if want == "" {
		return nil
	}
	var out []Layer
	for _, l := range layers {
		if slices.ContainsFunc(l.Protocols, func(p string) bool {
			return strings.ToLower(p) == want
		}) {
			out = append(out, clone(l))
		}
	}
	return out
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "-", "")
}

func clone(l Layer) Layer {
	l.Protocols = slices.Clone(l.Protocols)
	l.Devices = slices.Clone(l.Devices)
	return l
}
