package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// detectDesignDir looks for well-known mockup directory names in the
// current directory and returns the first that exists.
func detectDesignDir() string {
	for _, candidate := range []string{".designs", "designs", "mockups"} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ".designs"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .designsync.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to designsync! Let's configure your mockup set.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Designs directory.
	dirPrompt := promptui.Prompt{
		Label:   "Directory containing the HTML mockups",
		Default: detectDesignDir(),
	}
	designDir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("design dir: %w", err)
	}
	cfg.DesignDir = designDir

	// 2. Page set.
	pagesPrompt := promptui.Select{
		Label: "Page set",
		Items: []string{
			"standard — the Quantum dashboard pages",
			"custom   — start from the standard set and edit .designsync.yml",
		},
	}
	if _, _, err := pagesPrompt.Run(); err != nil {
		return nil, fmt.Errorf("page set selection: %w", err)
	}
	// Both choices write the standard set; "custom" is an invitation to
	// edit the generated file afterwards.

	// 3. Preview server port.
	portPrompt := promptui.Prompt{
		Label:   "Preview server port",
		Default: strconv.Itoa(cfg.Serve.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("preview port: %w", err)
	}
	cfg.Serve.Port, _ = strconv.Atoi(portStr)

	// 4. Live reload.
	livePrompt := promptui.Select{
		Label: "Enable live reload in the preview server",
		Items: []string{"yes", "no"},
	}
	liveIdx, _, err := livePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live reload selection: %w", err)
	}
	cfg.Serve.LiveReload = liveIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	configPath := ".designsync.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
