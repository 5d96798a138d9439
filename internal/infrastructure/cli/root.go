package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/estalabs/sentinel/internal/application"
	"github.com/estalabs/sentinel/pkg/domain/ai"
)

var service *application.SentinelService

// RootCmd is the whole CLI: sentinel takes a free-form question and prints
// the model's prediction. Flag parsing is disabled so every argument,
// dashes included, becomes part of the prompt.
var RootCmd = &cobra.Command{
	Use:   "sentinel [question]",
	Short: "Query the ESTA Sentinel model for law change predictions",
	Long: `Sentinel forwards a question to a locally running Ollama model tuned
for Michigan ESTA compliance and prints its 60-90 day advance
prediction of upcoming law changes.`,
	DisableFlagParsing: true,
	RunE:               runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	prompt := application.ResolvePrompt(args)

	fmt.Fprintf(out, "ESTA Sentinel - Querying: %s\n", prompt)
	fmt.Fprintln(out, strings.Repeat("-", 50))

	text, err := service.Query(cmd.Context(), prompt)
	if err != nil {
		var apiErr *ai.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(out, "Ollama API error: %v\n", apiErr)
		} else {
			fmt.Fprintf(out, "Error querying Sentinel: %v\n", err)
		}
		fmt.Fprintln(out, "No response received. Ensure Ollama is running.")
		fmt.Fprintln(out, "Start with: ollama serve")
		fmt.Fprintln(out, "Create model: ollama create esta-sentinel -f Modelfile")
		return nil
	}

	fmt.Fprintln(out, text)
	return nil
}

// Execute runs the preflight check and then the root command. Only a
// failed preflight produces a non-nil error; query failures are reported
// on the output stream and still count as normal completion.
func Execute() error {
	if err := preflight(); err != nil {
		var cliErr *CLIError
		if errors.As(err, &cliErr) {
			fmt.Println(cliErr.Error())
			for _, hint := range cliErr.Hints {
				fmt.Println(hint)
			}
		}
		return err
	}
	return RootCmd.Execute()
}
