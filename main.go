package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
)

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func main() {
	assets := flag.String("assets", "web", "directory the WASM bundle and wasm_exec.js are written to")
	configPath := flag.String("config", "", "optional greenaire config file passed to serve")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	build := []procConfig{
		{
			Name: "build-ui-wasm",
			Args: []string{"go", "build", "-o", filepath.Join(*assets, "main.wasm"), "./cmd/ui-wasm"},
			Env:  []string{"GOOS=js", "GOARCH=wasm"},
		},
	}
	serveArgs := []string{"go", "run", "./cmd/greenaire", "serve", "--assets", *assets}
	if *configPath != "" {
		serveArgs = append(serveArgs, "--config", *configPath)
	}
	serve := []procConfig{{Name: "serve", Args: serveArgs}}

	err := runAll(ctx, build)
	if err == nil {
		err = copyWasmExec(*assets)
	}
	if err == nil {
		err = runAll(ctx, serve)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "greenaire dev exited with error: %v\n", err)
		os.Exit(1)
	}
}

// runAll starts every process and waits for all of them. The first failure
// cancels the rest; exits caused by ctx cancellation are not errors.
func runAll(ctx context.Context, procs []procConfig) error {
	if len(procs) == 0 {
		return fmt.Errorf("no processes configured")
	}
	group, groupCtx := errgroup.WithContext(ctx)
	for _, cfg := range procs {
		cfg := cfg
		group.Go(func() error {
			cmd := exec.CommandContext(groupCtx, cfg.Args[0], cfg.Args[1:]...)
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if cfg.Dir != "" {
				cmd.Dir = cfg.Dir
			}
			if len(cfg.Env) > 0 {
				cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
			}
			if err := cmd.Start(); err != nil {
				return fmt.Errorf("%s start: %w", cfg.Name, err)
			}
			if err := cmd.Wait(); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("%s exited: %w", cfg.Name, err)
			}
			return nil
		})
	}
	return group.Wait()
}

// copyWasmExec copies the Go runtime's wasm_exec.js loader next to the bundle.
func copyWasmExec(assets string) error {
	root := strings.TrimSpace(os.Getenv("GOROOT"))
	if out, err := exec.Command("go", "env", "GOROOT").Output(); err == nil {
		root = strings.TrimSpace(string(out))
	}
	candidates := []string{
		filepath.Join(root, "lib", "wasm", "wasm_exec.js"),
		filepath.Join(root, "misc", "wasm", "wasm_exec.js"),
	}
	for _, src := range candidates {
		err := copyFile(src, filepath.Join(assets, "wasm_exec.js"))
		if err == nil {
			return nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return fmt.Errorf("wasm_exec.js not found under %s", root)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create assets dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
