package config

import "time"

// Default image MIME type allow-list. Matches the formats clients are able
// to re-encode before encrypting.
var defaultImageTypes = []string{
	"image/png",
	"image/jpeg",
	"image/jpg",
	"image/gif",
	"image/webp",
}

// defaultConfig returns the built-in fallback values merged in with the
// lowest priority. Any field left zero by env, flags, and the JSON file
// is filled from here.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "cipher-notes",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: "pgx",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Notes: Notes{
			// ~5 MB of binary payload after base64 expansion.
			ImageMaxChars: 7_000_000,
			ImageTypes:    defaultImageTypes,
		},
		Workers: Workers{
			ShareRetention: 7 * 24 * time.Hour,
			PurgeInterval:  time.Hour,
		},
	}
}
