// Command pwhash creates and verifies PBKDF2-HMAC-SHA512 password hash records.
//
// The password is always read from the first line of standard input so it
// never shows up in the process list or shell history:
//
//	echo -n "$PASSWORD" | pwhash hash
//	echo -n "$PASSWORD" | pwhash verify 'sha512:64000:18:...:...'
//
// Exit codes: 0 success or match, 1 mismatch, 2 invalid stored record,
// 3 usage or environment error.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-password-hasher/hashing"
	"github.com/hasbyte1/go-password-hasher/hashing/observe"
)

const (
	exitOK = iota
	exitMismatch
	exitInvalidRecord
	exitFailure
)

const metricsNamespace = "pwhash"

var errUsage = errors.New("usage: pwhash [flags] hash | verify <record>")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	v, fs, err := BuildViper(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	cfg, err := GetConfig(v)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	log := newLogger(stderr, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	reg := prometheus.NewRegistry()
	metrics, err := newMetrics(reg, cfg.MetricsTextfile)
	if err != nil {
		log.Error("failed to register metrics", zap.Error(err))
		return exitFailure
	}
	if cfg.MetricsTextfile != "" {
		defer func() {
			if err := prometheus.WriteToTextfile(cfg.MetricsTextfile, reg); err != nil {
				log.Error("failed to write metrics", zap.String("path", cfg.MetricsTextfile), zap.Error(err))
			}
		}()
	}

	inner, err := hashing.NewPBKDF2Hasher(cfg.Hashing)
	if err != nil {
		log.Error("invalid hashing configuration", zap.Error(err))
		return exitFailure
	}
	h := observe.New(inner, log, metrics)

	positional := fs.Args()
	if len(positional) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return exitFailure
	}

	password, err := readPassword(stdin)
	if err != nil {
		log.Error("failed to read password from stdin", zap.Error(err))
		return exitFailure
	}

	switch positional[0] {
	case "hash":
		if len(positional) != 1 {
			fmt.Fprintln(stderr, errUsage)
			return exitFailure
		}
		record, err := h.Make(password)
		if err != nil {
			return exitFailure
		}
		fmt.Fprintln(stdout, record)
		return exitOK

	case "verify":
		if len(positional) != 2 {
			fmt.Fprintln(stderr, errUsage)
			return exitFailure
		}
		ok, err := h.Check(password, positional[1])
		switch {
		case errors.Is(err, hashing.ErrInvalidHash):
			return exitInvalidRecord
		case err != nil:
			return exitFailure
		case !ok:
			return exitMismatch
		}
		if needs, _ := h.NeedsRehash(positional[1]); needs {
			log.Info("stored record uses outdated parameters; re-hash on next login")
		}
		return exitOK

	default:
		fmt.Fprintln(stderr, errUsage)
		return exitFailure
	}
}

// newMetrics registers metrics on reg only when they will be written out.
func newMetrics(reg prometheus.Registerer, textfile string) (*observe.Metrics, error) {
	if textfile == "" {
		return nil, nil
	}
	return observe.NewMetrics(metricsNamespace, reg)
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Named("pwhash")
}

// readPassword returns the first line of r without its line terminator.
func readPassword(r io.Reader) (hashing.Password, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return hashing.Password(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")), nil
}
