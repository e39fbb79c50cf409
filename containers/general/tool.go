package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/datamill-io/s3-source/plugintypes"
	s3source "github.com/datamill-io/s3-source/s3"
	"github.com/datamill-io/s3-source/utils"
)

const checkTimeout = 30 * time.Second

func printStruct(log zerolog.Logger, prefix string, s interface{}, isTop bool) {
	val := reflect.ValueOf(s)
	for i := 0; i < val.Type().NumField(); i++ {
		tag := val.Type().Field(i).Tag.Get("json")
		if tag == "-" {
			continue
		}
		components := strings.Split(tag, ",")
		p := components[0]
		if prefix != "" {
			p = fmt.Sprintf("%s.%s", prefix, p)
		}
		if isTop {
			log.Info().Msgf("for %s", p)
			p = ""
		}
		e := val.Field(i)
		if e.Kind() == reflect.Struct {
			printStruct(log, p, e.Interface(), false)
		} else {
			desc := val.Type().Field(i).Tag.Get("description")
			log.Info().Str("field", p).Msg(desc)
		}
	}
}

func printUsage(log zerolog.Logger) {
	log.Info().Msg("usage: ./s3source validate|properties|schema|check [config_file.yaml | <key=value>...]")
	log.Info().Msg("available config fields:")
	printStruct(log, "", *plugintypes.GetPluginRegistry(), true)
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("invocation", uuid.NewString()).
		Logger()

	if len(os.Args) < 2 {
		printUsage(log)
		os.Exit(1)
	}

	if err := run(log, os.Stdout, os.Args[1], os.Args[2:]); err != nil {
		log.Error().Err(err).Msg("failed")
		os.Exit(1)
	}
	log.Info().Msg("done")
}

func run(log zerolog.Logger, out io.Writer, command string, args []string) error {
	conf, err := loadConfig(args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	switch command {
	case "validate":
		if err := conf.Validate(); err != nil {
			return err
		}
		log.Info().Str("path", conf.Path).Msg("config is valid")
		return nil
	case "properties":
		if err := conf.Validate(); err != nil {
			return err
		}
		properties, err := s3source.NewSource(conf).FileSystemProperties()
		if err != nil {
			return err
		}
		return printJSON(out, redactProperties(properties))
	case "schema":
		// Design-time call, usable before the config fully validates.
		resolved, err := s3source.NewSource(conf).Schema()
		if err != nil {
			return err
		}
		return printJSON(out, resolved)
	case "check":
		if err := conf.Validate(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		if err := s3source.NewSource(conf).Check(ctx); err != nil {
			return err
		}
		log.Info().Str("path", conf.Path).Msg("bucket is reachable")
		return nil
	default:
		printUsage(log)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// loadConfig populates the source config either from a single YAML
// file argument or from key=value tokens on the command line.
func loadConfig(args []string) (*s3source.Config, error) {
	conf := &s3source.Config{}
	if len(args) == 1 && (strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml")) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, conf); err != nil {
			return nil, err
		}
		return conf, nil
	}
	if err := utils.ParseCLI("", args, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// redactProperties hides the secret key in displayed output.
func redactProperties(properties map[string]string) map[string]string {
	redacted := utils.DuplicateStrMap(properties)
	if _, ok := redacted["fs.s3a.secret.key"]; ok {
		redacted["fs.s3a.secret.key"] = "****"
	}
	return redacted
}

func printJSON(out io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}
