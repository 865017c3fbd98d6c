package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adamh-utopi/Payload-decoders/internal/config"
	"github.com/adamh-utopi/Payload-decoders/internal/logging"
	"github.com/adamh-utopi/Payload-decoders/pkg/qalcosonic"
)

type options struct {
	configPath string
	port       int
	format     string
	logLevel   string
}

type runner struct {
	settings config.Settings
	in       io.Reader
	out      io.Writer
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "qalcosonic-decode [hex]",
		Short: "Decode Axioma Qalcosonic E3/E4 LoRaWAN uplinks",
		Long: "qalcosonic-decode decodes Qalcosonic E3/E4 uplink payloads. Without arguments it reads\n" +
			"one payload per line from stdin, either as hex or as a JSON uplink object\n" +
			`such as {"fPort": 100, "bytes": [..]}.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			closer, err := logging.Configure(settings, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			r := &runner{settings: settings, in: in, out: out}
			if len(args) == 0 {
				return r.interactive()
			}
			return r.decodeLine(args[0])
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML settings file")
	cmd.PersistentFlags().IntVarP(&opts.port, "port", "p", config.DefaultPort, "LoRaWAN fPort of hex payloads")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, "output format: json, text or msgpack")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level: TRACE, DEBUG, INFO, WARN or ERROR")
	return cmd
}

// settings loads the config file and applies flags the user set explicitly.
func (o *options) settings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.New(o.configPath)
	if err != nil {
		return s, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("port") {
		s.Port = o.port
	}
	if flags.Changed("format") {
		s.Format = o.format
	}
	if flags.Changed("log-level") {
		s.LogLevel = o.logLevel
	}
	s.Format, err = qalcosonic.ParseFormat(s.Format)
	return s, err
}

func (r *runner) interactive() error {
	scanner := bufio.NewScanner(r.in)
	logrus.Debug("qalcosonic decode mode. Paste a hex payload or JSON uplink and press Enter (Ctrl+D to exit).")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := r.decodeLine(line); err != nil {
			logrus.WithError(err).Error("failed to decode uplink")
		}
	}
	return scanner.Err()
}

func (r *runner) decodeLine(line string) error {
	uplink, err := r.parseLine(line)
	if err != nil {
		return err
	}
	out := qalcosonic.DecodeUplink(uplink)
	entry := logrus.WithField("bytes", len(uplink.Bytes))
	if uplink.FPort != nil {
		entry = entry.WithField("fport", *uplink.FPort)
	}
	if out.OK() {
		entry.WithField("payloadtype", out.Data["payloadtype"]).Debug("decoded uplink")
	} else {
		entry.WithField("errors", out.Errors).Warn("uplink rejected")
	}

	data, err := qalcosonic.Encode(out, r.settings.Format)
	if err != nil {
		return err
	}
	if _, err := r.out.Write(data); err != nil {
		return err
	}
	if r.settings.Format != qalcosonic.FormatMsgpack {
		_, err = io.WriteString(r.out, "\n")
	}
	return err
}

func (r *runner) parseLine(line string) (qalcosonic.Uplink, error) {
	if strings.HasPrefix(line, "{") {
		var u qalcosonic.Uplink
		if err := json.Unmarshal([]byte(line), &u); err != nil {
			return u, fmt.Errorf("parse uplink JSON: %w", err)
		}
		return u, nil
	}
	return qalcosonic.UplinkFromHex(r.settings.Port, line)
}
