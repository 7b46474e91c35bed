package cpu

import (
	"strings"
)

// Status holds the condition flags set by instruction execution.
// Devices receive a copy and cannot change them.
type Status struct {
	Carry    bool
	Zero     bool
	Sign     bool
	Overflow bool
	Break    bool // Set by BRK, ends the execution slice.
	Error    bool // Set by an interrupt to an unmapped bus address.
}

// Clear all flags.
func (st *Status) Clear() {
	*st = Status{}
}

func (st Status) String() string {
	flags := []struct {
		set  bool
		name string
	}{
		{st.Carry, "C"},
		{st.Zero, "Z"},
		{st.Sign, "S"},
		{st.Overflow, "O"},
		{st.Break, "B"},
		{st.Error, "E"},
	}

	var text strings.Builder
	for _, flag := range flags {
		if flag.set {
			text.WriteString(flag.name)
		} else {
			text.WriteString("-")
		}
	}
	return text.String()
}
