package cli

import (
	"encoding/json"
	"fmt"

	"github.com/Karaytumut20/dailyspark/internal/storage"
)

type DebugCmd struct {
	DBPath  *DebugDBPathCmd  `cmd:"" help:"Show storage path."`
	DumpKey *DebugDumpKeyCmd `cmd:"" help:"Dump the raw JSON stored under a key."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// Output in machine-readable format
	output := map[string]string{
		"path": ctx.Store.ConfigPath(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpKeyCmd struct {
	Key string `arg:"" help:"Storage key (user_profile|today_challenge|completed_challenges|user_goals)."`
}

func (cmd *DebugDumpKeyCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	data, err := ctx.Store.Get(cmd.Key)
	if err == storage.ErrNotFound {
		return fmt.Errorf("no value stored under key: %s", cmd.Key)
	}
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	// Re-indent for readability; the blob is stored compact.
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("stored value is not valid JSON: %w", err)
	}
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
