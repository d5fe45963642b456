package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goliatone/go-adminkit/pkg/adminkit"
	"github.com/goliatone/go-adminkit/pkg/config"
	"github.com/goliatone/go-adminkit/pkg/interfaces/logger"
	"github.com/goliatone/go-adminkit/pkg/links"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type renderFlags struct {
	configPath string
	locale     string
	size       string
	attrs      []string
	disabled   bool
	onlyIcon   bool
	noTitle    bool
	noIcon     bool
	tooltip    bool
	text       bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "linkrender <action> [url]",
		Short: "Render an admin action link",
		Long: `Render an admin action link as HTML.

Examples:
  linkrender enable /users/1/enable
  linkrender delete /users/1 --disabled
  linkrender edit /users/1/edit --only-icon --locale fr
  linkrender show /users/1 --attr id=show-1 --attr target=_blank --text`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	f.StringVarP(&flags.locale, "locale", "l", "", "locale used for the title (defaults to config)")
	f.StringVarP(&flags.size, "size", "s", links.DefaultSize, "size key resolved against the size table")
	f.StringArrayVarP(&flags.attrs, "attr", "a", nil, "extra attribute as key=value (repeatable)")
	f.BoolVar(&flags.disabled, "disabled", false, "render a disabled link")
	f.BoolVar(&flags.onlyIcon, "only-icon", false, "render the icon with the title as tooltip")
	f.BoolVar(&flags.noTitle, "no-title", false, "hide the title")
	f.BoolVar(&flags.noIcon, "no-icon", false, "hide the icon")
	f.BoolVar(&flags.tooltip, "tooltip", false, "carry the title in a tooltip")
	f.BoolVar(&flags.text, "text", false, "print plain text instead of HTML")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log unresolved lookups")

	return cmd
}

func runRender(cmd *cobra.Command, flags *renderFlags, args []string) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	attrs, err := parseAttributes(flags.attrs)
	if err != nil {
		return err
	}

	module, err := adminkit.NewModule(adminkit.ModuleOptions{
		Config: cfg,
		Logger: logger.NewWithWriter(cmd.ErrOrStderr(), flags.verbose),
	})
	if err != nil {
		return err
	}

	url := links.DefaultURL
	if len(args) > 1 {
		url = args[1]
	}

	link := links.Make(args[0], url, attrs, flags.disabled).
		Size(flags.size).
		WithTitle(!flags.noTitle).
		WithIcon(!flags.noIcon).
		WithTooltip(flags.tooltip)
	if flags.onlyIcon {
		link.OnlyIcon()
	}

	out := module.Renderer(flags.locale).Render(link)
	if flags.text {
		if out, err = links.PlainText(out); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func loadConfig(path string) (config.Config, error) {
	if strings.TrimSpace(path) == "" {
		return config.Defaults(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("read config: %w", err)
	}
	input := map[string]any{}
	if err := yaml.Unmarshal(raw, &input); err != nil {
		return config.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return config.Load(input)
}

func parseAttributes(pairs []string) (links.Attributes, error) {
	var attrs links.Attributes
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return links.Attributes{}, fmt.Errorf("invalid attribute %q, expected key=value", pair)
		}
		attrs.Set(key, value)
	}
	return attrs, nil
}
