package provision

import (
	"fmt"

	"github.com/joho/godotenv"
)

// ReadEnvFile parses a composed environment artifact into key/value pairs.
// The composer keeps duplicate keys as separate lines; here, at the consuming
// end, later declarations win - the usual dotenv loading semantics.
func ReadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vars, nil
}
