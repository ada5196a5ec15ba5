package raw

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotenv seeds the process environment from dotenv files before anything reads it.
// Order: ENV_FILE alone when set; otherwise .env.local then .env. Variables already
// present in the environment are never overwritten, so earlier files win.
// Missing files are not an error.
func LoadDotenv() error {
	if f := New().Get("ENV_FILE", ""); f != "" {
		return loadOne(f)
	}
	for _, f := range []string{".env.local", ".env"} {
		if err := loadOne(f); err != nil {
			return err
		}
	}
	return nil
}

func loadOne(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
