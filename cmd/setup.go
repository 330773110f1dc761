package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"slidecraft/internal/console"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for Slidecraft",
	Long:  `Configure API keys, create the assets directory, and optionally set up Google Cloud publishing.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(console.TitleStyle.Render("Slidecraft Setup"))

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Creating directories", createDirectories},
		{"Configuring environment", configureEnv},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return nil
}

func createDirectories() error {
	if err := os.MkdirAll("assets", 0755); err != nil {
		return fmt.Errorf("create assets: %w", err)
	}
	fmt.Println(console.SuccessStyle.Render("✓ Created directories"))

	if _, err := os.Stat("assets/logo.png"); err != nil {
		fmt.Println(console.WarnStyle.Render("No assets/logo.png yet - every slide needs a logo image"))
	}
	return nil
}

func configureEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		var overwrite bool
		if err := huh.NewConfirm().
			Title("Found existing .env file").
			Description("Overwrite?").
			Value(&overwrite).
			Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(console.InfoStyle.Render("Kept existing .env"))
			return nil
		}
	}

	env := make(map[string]string)

	if err := configureRequiredKeys(env); err != nil {
		return err
	}

	if err := configureGroq(env); err != nil {
		return err
	}

	if err := configureGCP(env); err != nil {
		return err
	}

	return writeEnvFile(env)
}

func configureRequiredKeys(env map[string]string) error {
	var openaiKey string

	if err := huh.NewInput().
		Title("OpenAI API Key").
		Description("https://platform.openai.com/api-keys").
		EchoMode(huh.EchoModePassword).
		Value(&openaiKey).
		Validate(required("OpenAI API Key")).
		Run(); err != nil {
		return err
	}

	env["OPENAI_API_KEY"] = strings.TrimSpace(openaiKey)
	return nil
}

func configureGroq(env map[string]string) error {
	var setup bool
	if err := huh.NewConfirm().
		Title("Use Groq for text generation?").
		Description("Images still go through OpenAI (optional)").
		Value(&setup).
		Run(); err != nil {
		return err
	}

	if !setup {
		return nil
	}

	var key string
	if err := huh.NewInput().
		Title("GROQ API Key").
		Description("https://console.groq.com/keys").
		EchoMode(huh.EchoModePassword).
		Value(&key).
		Run(); err != nil {
		return err
	}

	key = strings.TrimSpace(key)
	if key != "" {
		env["GROQ_API_KEY"] = key
		fmt.Println(console.InfoStyle.Render("Set text.provider: groq in config.yaml to use it"))
	}
	return nil
}

func configureGCP(env map[string]string) error {
	var setupGCP bool
	if err := huh.NewConfirm().
		Title("Setup Google Cloud?").
		Description("Used for publishing decks to Cloud Storage and reading keys from Secret Manager").
		Value(&setupGCP).
		Run(); err != nil {
		return err
	}

	if !setupGCP {
		return nil
	}

	if !commandExists("gcloud") {
		fmt.Println(console.WarnStyle.Render("gcloud CLI not found - install from https://cloud.google.com/sdk/docs/install"))
		return nil
	}

	project, err := getOrEnterGCPProject()
	if err != nil {
		fmt.Println(console.WarnStyle.Render(fmt.Sprintf("GCP setup skipped: %v", err)))
		return nil
	}

	env["GOOGLE_CLOUD_PROJECT"] = project

	if err := enableGCPAPIs(project); err != nil {
		fmt.Println(console.WarnStyle.Render(fmt.Sprintf("API enablement failed: %v", err)))
	}

	var bucket string
	if err := huh.NewInput().
		Title("Cloud Storage bucket").
		Description("Leave empty to skip publishing").
		Value(&bucket).
		Run(); err != nil {
		return err
	}

	bucket = strings.TrimSpace(bucket)
	if bucket != "" {
		env["GCS_BUCKET"] = bucket
		fmt.Println(console.InfoStyle.Render("Set gcs.enabled: true in config.yaml to publish decks"))
	}

	return nil
}

func getOrEnterGCPProject() (string, error) {
	existing := getActiveProject()

	var choice string
	options := []huh.Option[string]{
		huh.NewOption("Enter project ID manually", "manual"),
	}

	if existing != "" {
		options = append([]huh.Option[string]{
			huh.NewOption(fmt.Sprintf("Use current: %s", existing), existing),
		}, options...)
	}

	if err := huh.NewSelect[string]().
		Title("Google Cloud Project").
		Options(options...).
		Value(&choice).
		Run(); err != nil {
		return "", err
	}

	if choice != "manual" {
		return choice, nil
	}

	var projectID string
	if err := huh.NewInput().
		Title("Project ID").
		Value(&projectID).
		Validate(required("Project ID")).
		Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(projectID), nil
}

func getActiveProject() string {
	out, err := exec.Command("gcloud", "config", "get-value", "project").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func enableGCPAPIs(project string) error {
	apis := []string{
		"storage.googleapis.com",
		"secretmanager.googleapis.com",
	}

	return runWithSpinner("Enabling APIs", func() error {
		args := append([]string{"services", "enable"}, apis...)
		args = append(args, "--project", project)
		return runSetupCmd("gcloud", args...)
	})
}

var envOrder = []string{
	"OPENAI_API_KEY",
	"GROQ_API_KEY",
	"GOOGLE_CLOUD_PROJECT",
	"GCS_BUCKET",
}

func writeEnvFile(env map[string]string) error {
	if err := os.WriteFile(".env", renderEnv(env), 0600); err != nil {
		return err
	}

	fmt.Println(console.SuccessStyle.Render("✓ Created .env file"))
	printNextSteps()
	return nil
}

func renderEnv(env map[string]string) []byte {
	var buf bytes.Buffer
	for _, key := range envOrder {
		if val, ok := env[key]; ok && val != "" {
			_, _ = fmt.Fprintf(&buf, "%s=%s\n", key, val)
		}
	}
	return buf.Bytes()
}

func printNextSteps() {
	fmt.Println()
	fmt.Println(console.TitleStyle.Render("Next steps:"))
	fmt.Println("  1. Put your logo at: assets/logo.png")
	fmt.Println("  2. Run: slidecraft")
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func runSetupCmd(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %s", err, stderr.String())
	}
	return nil
}

func runWithSpinner(title string, fn func() error) error {
	var err error
	_ = spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run()
	if err != nil {
		return err
	}
	fmt.Println(console.SuccessStyle.Render("✓ " + title))
	return nil
}
