package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vipcxj/safenum/internal/checked"
	"github.com/vipcxj/safenum/internal/interval"
)

const ShortDesc = "Evaluate checked interval arithmetic expressions"

const LongDesc = `Evaluate expressions of the form "<interval> <op> <scalar>" through the
checked arithmetic layer and print the resulting interval.

An interval is a closed range literal like [0,1]; the operator is one of
+ - * /; the scalar is a number of the selected kind. For example:

  safenum eval "[0,1] + 2"
  safenum eval --kind float "[0,1] * 0.5"
  safenum eval --policy clamp "[120,125] + 10"

Under the default abort policy any overflow, precision loss or bound
violation terminates the process with a diagnostic; the clamp policy
saturates instead and keeps going. Expressions can also be fed in bulk from
a YAML file holding an "exprs" list via --file.`

// Config carries the evaluation settings. Environment variables provide the
// defaults; explicitly set flags win over them.
type Config struct {
	Policy string `env:"SAFENUM_POLICY" envDefault:"abort"`
	Kind   string `env:"SAFENUM_KIND" envDefault:"int"`
	File   string
}

// Run implements the eval command.
func Run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exprs := args
	if cfg.File != "" {
		fileExprs, err := readBatch(cfg.File)
		if err != nil {
			return err
		}
		exprs = append(fileExprs, exprs...)
	}
	if len(exprs) == 0 {
		return fmt.Errorf("no expression given")
	}

	for _, expr := range exprs {
		var out string
		switch cfg.Kind {
		case "int":
			out, err = evalExpr[int64](expr, cfg.Policy)
		case "float":
			out, err = evalExpr[float64](expr, cfg.Policy)
		default:
			return fmt.Errorf("unknown kind: %s, allowed kinds are: int, float", cfg.Kind)
		}
		if err != nil {
			return fmt.Errorf("evaluate %q: %w", expr, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cmd.Flags().Changed("policy") {
		cfg.Policy, _ = cmd.Flags().GetString("policy")
	}
	if cmd.Flags().Changed("kind") {
		cfg.Kind, _ = cmd.Flags().GetString("kind")
	}
	cfg.File, _ = cmd.Flags().GetString("file")
	return cfg, nil
}

type batchFile struct {
	Exprs []string `yaml:"exprs"`
}

func readBatch(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var batch batchFile
	if err := yaml.Unmarshal(content, &batch); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var exprs []string
	for _, e := range batch.Exprs {
		e = strings.TrimSpace(e)
		if e != "" {
			exprs = append(exprs, e)
		}
	}
	return exprs, nil
}

// evalExpr evaluates one expression with the domain kind T.
func evalExpr[T checked.Number](expr string, policy string) (string, error) {
	pol, err := policyFor[T](policy)
	if err != nil {
		return "", err
	}
	ivPart, op, scalarPart, err := splitExpr(expr)
	if err != nil {
		return "", err
	}
	iv, err := interval.Parse[T](ivPart, nil, pol)
	if err != nil {
		return "", err
	}
	k, err := interval.ParseScalar[T](scalarPart)
	if err != nil {
		return "", fmt.Errorf("invalid scalar: %w", err)
	}

	var res interval.Interval[T]
	switch op {
	case checked.OpAdd:
		res = iv.Add(k)
	case checked.OpSub:
		res = iv.Sub(k)
	case checked.OpMul:
		res = iv.Mul(k)
	default:
		res = iv.Div(k)
	}
	return res.String(), nil
}

func policyFor[T checked.Number](name string) (checked.Policy[T], error) {
	switch name {
	case "abort":
		return checked.Abort[T]{}, nil
	case "clamp":
		return checked.Clamp[T]{}, nil
	default:
		return nil, fmt.Errorf("unknown policy: %s, allowed policies are: abort, clamp", name)
	}
}

// splitExpr cuts "<interval> <op> <scalar>" into its three pieces. The
// operator is the first non-space character after the closing bracket.
func splitExpr(expr string) (string, checked.Op, string, error) {
	s := strings.TrimSpace(expr)
	idx := strings.IndexByte(s, ']')
	if idx < 0 {
		return "", 0, "", fmt.Errorf("missing interval: %s", expr)
	}
	ivPart := s[:idx+1]
	rest := strings.TrimSpace(s[idx+1:])
	if rest == "" {
		return "", 0, "", fmt.Errorf("missing operator: %s", expr)
	}
	var op checked.Op
	switch rest[0] {
	case '+':
		op = checked.OpAdd
	case '-':
		op = checked.OpSub
	case '*':
		op = checked.OpMul
	case '/':
		op = checked.OpDiv
	default:
		return "", 0, "", fmt.Errorf("unsupported operator %q in: %s", rest[0], expr)
	}
	scalarPart := strings.TrimSpace(rest[1:])
	if scalarPart == "" {
		return "", 0, "", fmt.Errorf("missing scalar: %s", expr)
	}
	return ivPart, op, scalarPart, nil
}
