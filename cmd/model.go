package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/pwmeter/internal/model"
	"github.com/abhisek/pwmeter/internal/modelfetch"
	"github.com/abhisek/pwmeter/internal/strength"
)

var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Inspect or install classifier artifacts",
}

var modelInspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the contract of the configured model artifact",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, h, err := openHandle(cmd)
		if err != nil {
			return err
		}
		src := strength.Source{Path: e.cfg.Model.Path}
		printArtifact(cmd.OutOrStdout(), src.Describe(), h.Artifact())
		return nil
	},
}

var modelFetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download, verify and install a model artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		sum, _ := cmd.Flags().GetString("sha256")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		if timeout <= 0 {
			return fmt.Errorf("--timeout must be positive, got %s", timeout)
		}

		if out == "" {
			e, err := resolveEnv(cmd)
			if err != nil {
				return err
			}
			out = e.cfg.Model.Path
		}
		if out == "" {
			return fmt.Errorf("no destination: pass --out or set model.path")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		fetcher := modelfetch.New(modelfetch.WithTimeout(timeout))
		w := cmd.OutOrStdout()
		_, err := fetcher.Fetch(ctx, &modelfetch.FetchInput{
			URL:    args[0],
			Dest:   out,
			SHA256: sum,
		}, func(p modelfetch.Progress) {
			fmt.Fprintln(w, p.Message)
		})
		return err
	},
}

func init() {
	modelFetchCmd.Flags().String("out", "", "Destination path (defaults to the configured model path)")
	modelFetchCmd.Flags().String("sha256", "", "Expected SHA-256 hex digest (defaults to the <url>.sha256 sidecar)")
	modelFetchCmd.Flags().Duration("timeout", 2*time.Minute, "Download timeout")

	modelCmd.AddCommand(modelInspectCmd)
	modelCmd.AddCommand(modelFetchCmd)
}

func printArtifact(w io.Writer, source string, a *model.Artifact) {
	classes := make([]string, len(a.Classes))
	for i, c := range a.Classes {
		classes[i] = fmt.Sprintf("%d=%s", i, c)
	}
	name := a.Name
	if name == "" {
		name = "(unnamed)"
	}

	fmt.Fprintf(w, "%-10s %s\n", "Source:", source)
	fmt.Fprintf(w, "%-10s %s\n", "Name:", name)
	fmt.Fprintf(w, "%-10s %s\n", "Kind:", a.Kind)
	fmt.Fprintf(w, "%-10s %s\n", "Format:", a.FormatVersion)
	fmt.Fprintf(w, "%-10s %s\n", "Features:", strings.Join(a.Features, ", "))
	fmt.Fprintf(w, "%-10s %s\n", "Classes:", strings.Join(classes, " "))
	if a.SpecialSymbols != "" {
		fmt.Fprintf(w, "%-10s %s\n", "Specials:", a.SpecialSymbols)
	}
}
