package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/abhisek/pwmeter/internal/strength"
)

var errNoPassword = errors.New("no password provided")

var checkCmd = &cobra.Command{
	Use:   "check [password]",
	Short: "Classify one password from the argument or stdin",
	Long: "Classify one password. Without an argument the password is read from stdin;\n" +
		"on a terminal the command prompts and asks again on empty input.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		_, h, err := openHandle(cmd)
		if err != nil {
			return err
		}

		var password string
		if len(args) == 1 {
			password = args[0]
			if err := strength.ValidatePassword(password); err != nil {
				return err
			}
		} else {
			in := cmd.InOrStdin()
			password, err = readPassword(in, cmd.ErrOrStderr(), isTerminal(in))
			if err != nil {
				return err
			}
		}

		res, err := h.Check(password)
		if err != nil {
			return err
		}
		if asJSON {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		writeText(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print the result as JSON")
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// readPassword reads lines from r until a non-empty one arrives. Lines may be
// of any length and the last one need not end in a newline. Prompts are
// written to w only when prompt is set.
func readPassword(r io.Reader, w io.Writer, prompt bool) (string, error) {
	br := bufio.NewReader(r)
	for {
		if prompt {
			fmt.Fprint(w, "Enter a password to check its strength: ")
		}
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", fmt.Errorf("read password: %w", readErr)
		}

		password := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		err := strength.ValidatePassword(password)
		if err == nil {
			return password, nil
		}
		if !errors.Is(err, strength.ErrEmptyPassword) {
			return "", err
		}
		if readErr != nil {
			return "", errNoPassword
		}
		if prompt {
			fmt.Fprintln(w, "Please enter a password.")
		}
	}
}

func writeText(w io.Writer, res strength.Result) {
	fmt.Fprintf(w, "Predicted Strength: %s\n", res.Label)

	parts := make([]string, 0, strength.NumLabels)
	for _, l := range strength.AllLabels() {
		parts = append(parts, fmt.Sprintf("%s: %.2f", l, res.Probability(l)))
	}
	fmt.Fprintf(w, "Probabilities: %s\n", strings.Join(parts, ", "))
}

type checkOutput struct {
	Label         string             `json:"label"`
	Probabilities map[string]float64 `json:"probabilities"`
	Features      featureOutput      `json:"features"`
}

type featureOutput struct {
	HasDigits         bool `json:"has_digits"`
	HasSpecialSymbols bool `json:"has_special_symbols"`
	Length            int  `json:"length"`
}

func writeJSON(w io.Writer, res strength.Result) error {
	out := checkOutput{
		Label:         res.Label.String(),
		Probabilities: make(map[string]float64, strength.NumLabels),
		Features: featureOutput{
			HasDigits:         res.Features.HasDigits,
			HasSpecialSymbols: res.Features.HasSpecialSymbols,
			Length:            res.Features.Length,
		},
	}
	for _, l := range strength.AllLabels() {
		out.Probabilities[l.String()] = res.Probability(l)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
