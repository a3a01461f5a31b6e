package commands

import (
	"fmt"
	"os"
	"pew/lib/eveapi"
	"pew/lib/xmltree"
	"strings"

	"github.com/spf13/cobra"
)

var (
	callAuth      bool
	callCharacter int64
)

func init() {
	callCmd.Flags().BoolVar(&callAuth, "auth", false, "Send the configured key id and verification code.")
	callCmd.Flags().Int64Var(&callCharacter, "char", 0, "Scope the call to a character (implies --auth).")
	rootCmd.AddCommand(callCmd)
}

var callCmd = &cobra.Command{
	Use:   "call <category> <method> [name=value...]",
	Short: "Calls any API method and prints the decoded result.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := eveapi.Category(args[0])
		method := args[1]
		params, err := parseParams(args[2:])
		if err != nil {
			return err
		}

		var result xmltree.Value
		switch {
		case callCharacter != 0:
			result, err = client.CharRequest(cmd.Context(), category, method, callCharacter, params)
		case callAuth:
			result, err = client.AuthRequest(cmd.Context(), category, method, params)
		case category == eveapi.CategoryMarketData:
			result, err = client.MarketRequest(cmd.Context(), method, params)
		case category == eveapi.CategoryEveCentral:
			result, err = client.Document(cmd.Context(), category, method, params)
		default:
			result, err = client.Request(cmd.Context(), category, method, params)
		}
		if err != nil {
			return err
		}

		return render(os.Stdout, result, jsonOutput)
	},
}

// parseParams turns name=value arguments into request parameters, a value
// may itself contain '='.
func parseParams(args []string) (eveapi.Params, error) {
	params := eveapi.Params{}
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("parameter %q must be in name=value form", arg)
		}
		params[name] = value
	}
	return params, nil
}
