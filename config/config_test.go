package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

var configEnvVars = []string{
	"CALCONV_SERVER_PORT",
	"CALCONV_SERVER_ENVIRONMENT",
	"CALCONV_SERVER_ALLOWED_ORIGINS",
	"CALCONV_USDA_API_KEY",
	"CALCONV_USDA_BASE_URL",
	"CALCONV_USDA_MAX_RESULTS",
	"CALCONV_NUTRITIONIX_APP_ID",
	"CALCONV_NUTRITIONIX_APP_KEY",
	"CALCONV_NUTRITIONIX_BASE_URL",
	"CALCONV_CONVERTER_MIN_CALORIES",
	"CALCONV_CONVERTER_MAX_CALORIES",
	"CALCONV_CONVERTER_DEFAULT_CALORIES",
	"CALCONV_CONVERTER_STEP",
	"CALCONV_SESSION_TTL",
	"CALCONV_RATELIMIT_PER_IP",
}

func cleanupEnv() {
	for _, name := range configEnvVars {
		os.Unsetenv(name)
	}
}

func setCredentials() {
	os.Setenv("CALCONV_USDA_API_KEY", "test-key")
	os.Setenv("CALCONV_NUTRITIONIX_APP_ID", "test-app-id")
	os.Setenv("CALCONV_NUTRITIONIX_APP_KEY", "test-app-key")
}

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when only credentials set", func(t *testing.T) {
		cleanupEnv()
		setCredentials()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.USDA.BaseURL != "https://api.nal.usda.gov/fdc" {
			t.Errorf("USDA.BaseURL = %s, want https://api.nal.usda.gov/fdc", cfg.USDA.BaseURL)
		}
		if cfg.USDA.MaxResults != 20 {
			t.Errorf("USDA.MaxResults = %d, want 20", cfg.USDA.MaxResults)
		}
		if cfg.Nutritionix.BaseURL != "https://trackapi.nutritionix.com" {
			t.Errorf("Nutritionix.BaseURL = %s", cfg.Nutritionix.BaseURL)
		}
		if cfg.Converter.MinCalories != 10 || cfg.Converter.MaxCalories != 1000 {
			t.Errorf("Converter range = [%g, %g], want [10, 1000]", cfg.Converter.MinCalories, cfg.Converter.MaxCalories)
		}
		if cfg.Converter.DefaultCalories != 100 {
			t.Errorf("Converter.DefaultCalories = %g, want 100", cfg.Converter.DefaultCalories)
		}
		if cfg.Converter.Step != 10 {
			t.Errorf("Converter.Step = %g, want 10", cfg.Converter.Step)
		}
		if cfg.Session.TTL != 30*time.Minute {
			t.Errorf("Session.TTL = %v, want 30m", cfg.Session.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		setCredentials()
		os.Setenv("CALCONV_SERVER_PORT", "9090")
		os.Setenv("CALCONV_SERVER_ENVIRONMENT", "production")
		os.Setenv("CALCONV_USDA_BASE_URL", "https://custom.api.com")
		os.Setenv("CALCONV_USDA_MAX_RESULTS", "5")
		os.Setenv("CALCONV_NUTRITIONIX_BASE_URL", "https://nix.example.com")
		os.Setenv("CALCONV_CONVERTER_MAX_CALORIES", "2000")
		os.Setenv("CALCONV_SESSION_TTL", "1h")
		os.Setenv("CALCONV_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.USDA.APIKey != "test-key" {
			t.Errorf("USDA.APIKey = %s, want test-key", cfg.USDA.APIKey)
		}
		if cfg.USDA.BaseURL != "https://custom.api.com" {
			t.Errorf("USDA.BaseURL = %s, want https://custom.api.com", cfg.USDA.BaseURL)
		}
		if cfg.USDA.MaxResults != 5 {
			t.Errorf("USDA.MaxResults = %d, want 5", cfg.USDA.MaxResults)
		}
		if cfg.Nutritionix.AppID != "test-app-id" || cfg.Nutritionix.AppKey != "test-app-key" {
			t.Errorf("Nutritionix credentials = %s/%s", cfg.Nutritionix.AppID, cfg.Nutritionix.AppKey)
		}
		if cfg.Nutritionix.BaseURL != "https://nix.example.com" {
			t.Errorf("Nutritionix.BaseURL = %s", cfg.Nutritionix.BaseURL)
		}
		if cfg.Converter.MaxCalories != 2000 {
			t.Errorf("Converter.MaxCalories = %g, want 2000", cfg.Converter.MaxCalories)
		}
		if cfg.Session.TTL != time.Hour {
			t.Errorf("Session.TTL = %v, want 1h", cfg.Session.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails validation when USDA API key is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing API key")
		}
		if err.Error() != "invalid configuration: USDA API key is required (set CALCONV_USDA_API_KEY)" {
			t.Errorf("Load() error = %v, want 'USDA API key is required'", err)
		}
	})

	t.Run("fails validation when Nutritionix credentials are missing", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CALCONV_USDA_API_KEY", "test-key")
		defer cleanupEnv()

		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "Nutritionix") {
			t.Errorf("Load() error = %v, want Nutritionix credentials error", err)
		}
	})

	t.Run("fails validation for inverted calorie range", func(t *testing.T) {
		cleanupEnv()
		setCredentials()
		os.Setenv("CALCONV_CONVERTER_MIN_CALORIES", "500")
		os.Setenv("CALCONV_CONVERTER_MAX_CALORIES", "100")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for inverted range")
		}
	})

	t.Run("fails validation when default is outside range", func(t *testing.T) {
		cleanupEnv()
		setCredentials()
		os.Setenv("CALCONV_CONVERTER_DEFAULT_CALORIES", "5")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for default outside range")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		os.Chdir(t.TempDir())

		if err := loadEnvFile(); err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables from .env file", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		os.Chdir(t.TempDir())

		envContent := `
# Comment line
TEST_VAR_1=value1
TEST_VAR_2="value two"

# Another comment
TEST_VAR_3=value3
`
		if err := os.WriteFile(".env", []byte(envContent), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		os.Unsetenv("TEST_VAR_1")
		os.Unsetenv("TEST_VAR_2")
		os.Unsetenv("TEST_VAR_3")
		defer func() {
			os.Unsetenv("TEST_VAR_1")
			os.Unsetenv("TEST_VAR_2")
			os.Unsetenv("TEST_VAR_3")
		}()

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_VAR_1") != "value1" {
			t.Errorf("TEST_VAR_1 = %s, want value1", os.Getenv("TEST_VAR_1"))
		}
		if os.Getenv("TEST_VAR_2") != "value two" {
			t.Errorf("TEST_VAR_2 = %s, want 'value two'", os.Getenv("TEST_VAR_2"))
		}
		if os.Getenv("TEST_VAR_3") != "value3" {
			t.Errorf("TEST_VAR_3 = %s, want value3", os.Getenv("TEST_VAR_3"))
		}
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		originalDir, _ := os.Getwd()
		defer os.Chdir(originalDir)

		os.Chdir(t.TempDir())

		if err := os.WriteFile(".env", []byte("CALCONV_USDA_API_KEY=from-file\n"), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		os.Setenv("CALCONV_USDA_API_KEY", "from-env")
		defer os.Unsetenv("CALCONV_USDA_API_KEY")

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v", err)
		}
		if got := os.Getenv("CALCONV_USDA_API_KEY"); got != "from-env" {
			t.Errorf("CALCONV_USDA_API_KEY = %s, want from-env", got)
		}
	})
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	cleanupEnv()
	defer cleanupEnv()

	originalDir, _ := os.Getwd()
	defer os.Chdir(originalDir)
	os.Chdir(t.TempDir())

	content := "CALCONV_USDA_API_KEY=file-key\nCALCONV_NUTRITIONIX_APP_ID=file-id\nCALCONV_NUTRITIONIX_APP_KEY=file-app-key\n"
	if err := os.WriteFile(".env", []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test .env file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.USDA.APIKey != "file-key" {
		t.Errorf("USDA.APIKey = %s, want file-key", cfg.USDA.APIKey)
	}
	if cfg.Nutritionix.AppID != "file-id" {
		t.Errorf("Nutritionix.AppID = %s, want file-id", cfg.Nutritionix.AppID)
	}
}
