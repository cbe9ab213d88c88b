package qc

import "testing"

// Check runs fn through Forall and fails the test on the first failing
// trial, logging the seed so the failure can be reproduced with
// QC_SEED=<seed>.
//
// Example:
//
//	qc.Check(t, "abs is non-negative", qc.Config{},
//	    map[string]any{"n": qc.Ints()},
//	    func(args qc.Args) error {
//	        if abs(args["n"].(int64)) < 0 {
//	            return fmt.Errorf("abs(%d) is negative", args["n"])
//	        }
//	        return nil
//	    })
func Check(t *testing.T, name string, cfg Config, gens map[string]any, fn func(Args) error) {
	t.Helper()

	env := cfg.environment()
	cfg.Env = env
	wrapped := Forall(cfg, gens, fn)
	if err := wrapped(nil); err != nil {
		t.Fatalf("qc %q failed: %v (seed=%d, rerun with QC_SEED=%d to reproduce)",
			name, err, env.Seed(), env.Seed())
	}
}
