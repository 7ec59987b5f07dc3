package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dmitrymomot/totpcode/pkg/base32"
	"github.com/dmitrymomot/totpcode/pkg/totp"
)

func main() {
	cfg, err := totp.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var (
		newSecret = flag.Bool("new-secret", false, "generate a new base32-encoded secret and exit")
		secret    = flag.String("secret", "", "base32-encoded shared secret")
		digits    = flag.Int("digits", cfg.Digits, "code width, 1 to 9")
		step      = flag.Uint64("step", cfg.TimeStep, "time step in seconds")
		origin    = flag.Uint64("origin", cfg.TimeOrigin, "epoch seconds to start counting windows from")
		offset    = flag.Int64("offset", cfg.TimeOffset, "clock skew adjustment in seconds")
		algorithm = flag.String("algorithm", cfg.Algorithm, "HMAC algorithm: sha1, sha224, sha256, sha384 or sha512")
		at        = flag.Int64("at", time.Now().Unix(), "epoch seconds to generate the code for")
	)
	flag.Parse()

	if *newSecret {
		s, err := totp.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate secret: %v", err)
		}
		fmt.Println(s)
		return
	}

	if *secret == "" {
		log.Fatal("Missing -secret (or use -new-secret)")
	}

	algo, err := totp.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Fatalf("Failed to parse algorithm: %v", err)
	}

	key, err := base32.DecodeString(*secret)
	if err != nil {
		log.Fatalf("Failed to decode secret: %v", err)
	}

	result, err := totp.Calculate(totp.Params{
		TimeOrigin: *origin,
		TimeStep:   *step,
		TimeOffset: *offset,
		Algorithm:  algo,
		Digits:     *digits,
	}, key, uint64(*at))
	if err != nil {
		log.Fatalf("Failed to calculate code: %v", err)
	}

	fmt.Println(result.Code)
}
