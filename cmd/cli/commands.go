package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shreerajan/UI-Generator/internal/client"
	"github.com/Shreerajan/UI-Generator/internal/codegen"
	"github.com/Shreerajan/UI-Generator/internal/config"
	"github.com/Shreerajan/UI-Generator/internal/explain"
	"github.com/Shreerajan/UI-Generator/internal/generation"
	"github.com/Shreerajan/UI-Generator/internal/observability"
	"github.com/Shreerajan/UI-Generator/internal/planner"
	"github.com/Shreerajan/UI-Generator/internal/render"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// generator is satisfied by both the remote client and the local service.
type generator interface {
	Generate(ctx context.Context, prompt string) (uischema.GenerationResult, error)
}

type planFetcher interface {
	generator
	plan(ctx context.Context, prompt string) (uischema.UIPlan, error)
}

type remote struct{ *client.Client }

func (r remote) plan(ctx context.Context, prompt string) (uischema.UIPlan, error) {
	return r.FetchPlan(ctx, prompt)
}

type local struct{ *generation.Service }

func (l local) plan(ctx context.Context, prompt string) (uischema.UIPlan, error) {
	return l.Plan(ctx, prompt)
}

func newRootCmd() *cobra.Command {
	var server string

	root := &cobra.Command{
		Use:          "uigen",
		Short:        "Generate UI plans, markup and previews from prompts",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&server, "server", "", "API server base URL (default: call the model directly)")

	backend := func() (planFetcher, error) {
		if server != "" {
			return remote{client.New(server)}, nil
		}
		if err := config.LoadDotEnv(); err != nil {
			return nil, err
		}
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return nil, err
		}
		observability.InitLoggerTo(os.Stderr, cfg.LogLevel)
		svc := generation.NewService(planner.New(cfg.Planner()), generation.WithStrictTypes(cfg.StrictTypes))
		return local{svc}, nil
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "plan PROMPT...",
			Short: "Request a validated UI plan",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := backend()
				if err != nil {
					return err
				}
				plan, err := b.plan(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), plan)
			},
		},
		&cobra.Command{
			Use:   "generate PROMPT...",
			Short: "Request a plan and print it with code and explanation",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := backend()
				if err != nil {
					return err
				}
				res, err := b.Generate(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			},
		},
		&cobra.Command{
			Use:   "code [FILE]",
			Short: "Print a plan as JSX-like markup",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				plan, err := uischema.DecodePlan(raw)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), codegen.Plan(plan))
				return err
			},
		},
		&cobra.Command{
			Use:   "render [FILE]",
			Short: "Render a plan to an HTML fragment",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				plan, err := uischema.ParsePlan(raw)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
				}
				out, err := render.New(render.DefaultRegistry(), render.WithUnresolvedHook(func(e render.UnresolvedComponentError) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", e)
				})).HTML(plan)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
				return err
			},
		},
		&cobra.Command{
			Use:   "explain LAYOUT",
			Short: "Explain a layout name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), explain.Explain(args[0]))
				return err
			},
		},
	)
	return root
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return raw, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
