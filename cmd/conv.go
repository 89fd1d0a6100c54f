package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goconvdev/goconv/base"
	"github.com/goconvdev/goconv/logger"
)

var (
	convTarget  targetFlags
	convVerbose bool
)

var convCmd = &cobra.Command{
	Use:   "conv <number> <input_base>",
	Short: "Convert a single number to another base",
	Long: `Convert a single number from its claimed base to a target base.

The input base is one of b (binary), o (octal), d (decimal) or x
(hexadecimal); the target base is chosen with exactly one of the
-b, -o, -d, -x flags.`,
	Example: "  goconv conv 10111011 b -d\n  goconv conv 4B x -o",
	Args:    cobra.ExactArgs(2),
	RunE:    runConv,
}

func init() {
	rootCmd.AddCommand(convCmd)
	convTarget.register(convCmd)
	convCmd.Flags().BoolVarP(&convVerbose, "verbose", "v", false, "show verbose output")
}

func runConv(cmd *cobra.Command, args []string) error {
	logger.SetLogger(logger.New(convVerbose))

	// Usage and validation errors are echoed to stdout; the command
	// itself still exits cleanly.
	target, err := convTarget.target()
	if err != nil {
		fmt.Println(err)
		return nil
	}

	from, err := base.ParseBase(args[1])
	if err != nil {
		fmt.Println(err)
		return nil
	}

	value, err := base.Parse(args[0], from)
	if err != nil {
		fmt.Println(err)
		return nil
	}

	out, err := base.Format(value, target)
	if err != nil {
		fmt.Println(err)
		return nil
	}

	logger.Debug("converted number", "token", args[0], "from", from, "to", target)
	fmt.Println(out)
	return nil
}
