// Package programs holds the static register programs for the bridge and the
// sensors, and the interpreters that push them to hardware.
package programs

// SensorReadMarker in the address slot of a sensor program entry means: read
// the sensor register named by the value, discard it, and write 0x00 to 0xff.
const SensorReadMarker uint8 = 0xff

// Entry is one register assignment.
type Entry struct {
	Addr  uint8
	Value uint8
}

// Program is an ordered register program. Programs are package-level data and
// must not be modified.
type Program []Entry

type RegisterWriter interface {
	Write(addr, val uint8) error
}

type SensorReadWriter interface {
	RegisterWriter
	Read(reg uint8) (uint8, error)
}

// ApplyBridge writes every entry of p in order. A failing entry does not stop
// the program; the first error seen is returned.
func ApplyBridge(w RegisterWriter, p Program) error {
	var first error
	for _, e := range p {
		if err := w.Write(e.Addr, e.Value); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ApplySensor writes every entry of p over SCCB, honouring SensorReadMarker.
func ApplySensor(s SensorReadWriter, p Program) error {
	var first error
	keep := func(err error) {
		if err != nil && first == nil {
			first = err
		}
	}
	for _, e := range p {
		if e.Addr != SensorReadMarker {
			keep(s.Write(e.Addr, e.Value))
			continue
		}
		_, err := s.Read(e.Value)
		keep(err)
		keep(s.Write(SensorReadMarker, 0x00))
	}
	return first
}
