package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ludo-technologies/esgen/internal/config"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate an esgen configuration file",
		Long: `Generate a documented esgen configuration file with sensible defaults.

By default, creates .esgen.yaml in the current directory with full
documentation. Use --interactive for a guided setup wizard.

Examples:
  # Create .esgen.yaml in the current directory
  esgen init

  # Custom output path
  esgen init --config custom.yaml

  # Overwrite existing file
  esgen init --force

  # Generate a smaller config with essential options only
  esgen init --minimal

  # Interactive setup wizard
  esgen init --interactive
  esgen init -i`,
		RunE: runInit,
	}

	cmd.Flags().StringP("config", "c", ".esgen.yaml", "Output path for the config file")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing config file")
	cmd.Flags().Bool("minimal", false, "Generate minimal config with essential options only")
	cmd.Flags().BoolP("interactive", "i", false, "Interactive setup wizard")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	force, _ := cmd.Flags().GetBool("force")
	minimal, _ := cmd.Flags().GetBool("minimal")
	interactive, _ := cmd.Flags().GetBool("interactive")

	indent := config.IndentStyleTwoSpace
	lineEnd := config.LineEndingStyleLF

	if interactive {
		var err error
		var interactiveConfigPath string
		indent, lineEnd, interactiveConfigPath, err = runInteractiveSetup(configPath)
		if err != nil {
			return err
		}
		configPath = interactiveConfigPath
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("%s already exists. Use --force to overwrite", configPath)
		}
	}

	dir := filepath.Dir(configPath)
	if dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("directory does not exist: %s", dir)
		}
	}

	var content string
	if minimal {
		content = config.GetMinimalConfigTemplate()
	} else {
		content = config.GetFullConfigTemplate(indent, lineEnd)
	}

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	displayPath := configPath
	if absPath, err := filepath.Abs(configPath); err == nil {
		displayPath = absPath
	}
	fmt.Printf("Created %s\n", displayPath)
	fmt.Println("\nRun 'esgen render <file>' to render an AST.")

	return nil
}

func runInteractiveSetup(defaultConfigPath string) (config.IndentStyle, config.LineEndingStyle, string, error) {
	fmt.Println()
	fmt.Println("esgen Configuration Setup")
	fmt.Println("==========================")
	fmt.Println()

	indentChoices := []struct {
		Label string
		Value config.IndentStyle
	}{
		{"2 spaces", config.IndentStyleTwoSpace},
		{"4 spaces", config.IndentStyleFourSpace},
		{"Tab", config.IndentStyleTab},
	}

	indentTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	indentPrompt := promptui.Select{
		Label:     "What indentation should rendered files use?",
		Items:     indentChoices,
		Templates: indentTemplates,
	}

	indentIdx, _, err := indentPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("indent selection cancelled: %w", err)
	}
	selectedIndent := indentChoices[indentIdx].Value

	fmt.Println()

	lineEndChoices := []struct {
		Label string
		Value config.LineEndingStyle
	}{
		{"LF (Unix)", config.LineEndingStyleLF},
		{"CRLF (Windows)", config.LineEndingStyleCRLF},
	}

	lineEndTemplates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "\U0001F449 {{ .Label | cyan }}",
		Inactive: "   {{ .Label | white }}",
		Selected: "\U00002705 {{ .Label | green }}",
	}

	lineEndPrompt := promptui.Select{
		Label:     "What line ending should rendered files use?",
		Items:     lineEndChoices,
		Templates: lineEndTemplates,
	}

	lineEndIdx, _, err := lineEndPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("line ending selection cancelled: %w", err)
	}
	selectedLineEnd := lineEndChoices[lineEndIdx].Value

	fmt.Println()

	outputPrompt := promptui.Prompt{
		Label:   "Output file path",
		Default: defaultConfigPath,
	}

	outputPath, err := outputPrompt.Run()
	if err != nil {
		return "", "", "", fmt.Errorf("output path input cancelled: %w", err)
	}
	if outputPath == "" {
		outputPath = defaultConfigPath
	}

	fmt.Println()
	fmt.Printf("Creating %s... ", outputPath)

	return selectedIndent, selectedLineEnd, outputPath, nil
}
