package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/embedq/nats"
)

var (
	cfgFile string
	servers []string
	name    string
	user    string
	pass    string
	verbose bool

	cfg config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "natscat",
	Short:         "Publish and subscribe to NATS subjects from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			log = log.Level(zerolog.InfoLevel)
		}

		var err error
		cfg, err = loadConfig(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("server") {
			cfg.Servers = servers
		}
		if cmd.Flags().Changed("name") {
			cfg.Name = name
		}
		if cmd.Flags().Changed("user") {
			cfg.User = user
		}
		if cmd.Flags().Changed("pass") {
			cfg.Pass = pass
		}
		return nil
	},
}

var pubCmd = &cobra.Command{
	Use:   "pub <subject> <payload>",
	Short: "Publish one message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		replyTo, _ := cmd.Flags().GetString("reply-to")

		client, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Publish(args[0], replyTo, []byte(args[1])); err != nil {
			return err
		}
		log.Info().Str("subject", args[0]).Int("bytes", len(args[1])).Msg("published")
		return nil
	},
}

var subCmd = &cobra.Command{
	Use:   "sub <subject>",
	Short: "Subscribe to a subject and print messages until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		queue, _ := cmd.Flags().GetString("queue")
		sid, _ := cmd.Flags().GetString("sid")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client, err := connect(ctx)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.Subscribe(args[0], queue, sid); err != nil {
			return err
		}
		log.Info().Str("subject", args[0]).Str("sid", sid).Msg("subscribed")

		<-ctx.Done()
		return client.Unsubscribe(sid, 0)
	},
}

// connect builds a client from the resolved config and dials a seed server.
func connect(ctx context.Context) (*nats.Client, error) {
	clientCfg := nats.Config{
		Name:           cfg.Name,
		ConnectTimeout: cfg.ConnectTimeout,
		OnMessage: func(c *nats.Client, msg *nats.Message) error {
			ev := log.Info().
				Str("subject", string(msg.Subject)).
				Str("sid", string(msg.SID))
			if msg.ReplyTo != nil {
				ev = ev.Str("reply_to", string(msg.ReplyTo))
			}
			ev.Bytes("payload", msg.Payload).Msg("message")
			return nil
		},
		OnDisconnect: func(c *nats.Client, err error) {
			log.Warn().Err(err).Msg("disconnected")
		},
	}
	if cfg.User != "" {
		clientCfg.OnAuthRequired = func(c *nats.Client, user, pass []byte) (int, int, error) {
			return copy(user, cfg.User), copy(pass, cfg.Pass), nil
		}
	}

	client := nats.NewClient(clientCfg)
	if err := client.Connect(ctx, nats.NewStaticServers(cfg.Servers...)); err != nil {
		return nil, err
	}
	return client, nil
}

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "natscat").Logger()

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to TOML config file")
	rootCmd.PersistentFlags().StringSliceVarP(&servers, "server", "s", nil, "seed server address (repeatable)")
	rootCmd.PersistentFlags().StringVar(&name, "name", "", "client name, used for seed selection")
	rootCmd.PersistentFlags().StringVar(&user, "user", "", "username for servers demanding auth")
	rootCmd.PersistentFlags().StringVar(&pass, "pass", "", "password for servers demanding auth")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	pubCmd.Flags().String("reply-to", "", "reply-to subject to attach")
	subCmd.Flags().String("queue", "", "queue group to join")
	subCmd.Flags().String("sid", "1", "subscription id")

	rootCmd.AddCommand(pubCmd, subCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("natscat failed")
		os.Exit(1)
	}
}
