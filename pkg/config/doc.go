// Package config loads environment variables into typed structs, with
// optional .env file support.
//
// It backs the library's own tunables (such as the UTILKIT_RANDOM_SEED
// override used by pkg/random) and is equally usable by consumers for
// their application settings. Parsing is handled by caarlos0/env, .env
// files by joho/godotenv.
//
//	type Settings struct {
//		Locale string `env:"APP_LOCALE" envDefault:"en"`
//		Debug  bool   `env:"APP_DEBUG"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		// handle error
//	}
//
// Each struct type is parsed once and cached; subsequent Load calls for
// the same type return the cached copy. Reset clears the cache, which is
// mainly useful in tests that mutate the environment.
//
// All functions are safe for concurrent use.
package config
