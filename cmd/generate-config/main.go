package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"pokerdemo/internal/config"
)

var output = flag.String("o", "", "write to this file instead of stdout")

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logrus.WithError(err).Fatal("could not create config file")
		}
		defer f.Close()

		w = f
	}

	if err := writeConfig(w, config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not write config")
	}
}

func writeConfig(w io.Writer, cfg config.Config) error {
	if _, err := fmt.Fprintln(w, "# every value can be overridden with a POKERDEMO_ environment variable"); err != nil {
		return err
	}

	return yaml.NewEncoder(w).Encode(cfg)
}
