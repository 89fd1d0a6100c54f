package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goconvdev/goconv/base"
)

// errNoTarget is reported when a command is invoked without exactly one
// target base flag.
var errNoTarget = errors.New("You must specify a target conversion base using -b, -o, -d, or -x.")

// targetFlags holds the four target base flags shared by conv and
// from-file. Exactly one must be set.
type targetFlags struct {
	binary  bool
	octal   bool
	decimal bool
	hex     bool
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.binary, "binary", "b", false, "convert to binary")
	cmd.Flags().BoolVarP(&f.octal, "octal", "o", false, "convert to octal")
	cmd.Flags().BoolVarP(&f.decimal, "decimal", "d", false, "convert to decimal")
	cmd.Flags().BoolVarP(&f.hex, "hex", "x", false, "convert to hexadecimal")
}

// target resolves the selected flag to a base tag.
func (f *targetFlags) target() (base.Base, error) {
	var selected []base.Base
	for _, c := range []struct {
		set bool
		b   base.Base
	}{
		{f.binary, base.Binary},
		{f.octal, base.Octal},
		{f.decimal, base.Decimal},
		{f.hex, base.Hex},
	} {
		if c.set {
			selected = append(selected, c.b)
		}
	}
	if len(selected) != 1 {
		return "", errNoTarget
	}
	return selected[0], nil
}
