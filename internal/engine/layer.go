package engine

// LayerMask selects object layers for queries. Bit i is layer i.
type LayerMask uint32

const (
	LayerDefault   = 0
	LayerGround    = 1
	LayerGrabbable = 2
	LayerPlayer    = 3

	MaxLayers = 32
)

const Everything LayerMask = ^LayerMask(0)

// MaskOf builds a mask from layer indices. Out-of-range layers are ignored.
func MaskOf(layers ...int) LayerMask {
	var m LayerMask
	for _, l := range layers {
		if l >= 0 && l < MaxLayers {
			m |= 1 << uint(l)
		}
	}
	return m
}

func (m LayerMask) Contains(layer int) bool {
	if layer < 0 || layer >= MaxLayers {
		return false
	}
	return m&(1<<uint(layer)) != 0
}

// Without clears the given layers.
func (m LayerMask) Without(layers ...int) LayerMask {
	return m &^ MaskOf(layers...)
}

var layerNames = map[string]int{
	"default":   LayerDefault,
	"ground":    LayerGround,
	"grabbable": LayerGrabbable,
	"player":    LayerPlayer,
}

// LayerByName maps a layer name to its index.
func LayerByName(name string) (int, bool) {
	l, ok := layerNames[name]
	return l, ok
}
