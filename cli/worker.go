package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dhootha/config"
	"dhootha/shared/kafka"
	"dhootha/worker"
)

func newWorkerCmd(cfg *config.Config) *cobra.Command {
	var fromOldest bool

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run retrievals requested on the Kafka request topic",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.KafkaBrokers) == 0 {
				return errors.New("KAFKA_BROKERS is not set")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c := buildComponents(ctx, *cfg)
			defer c.Close()

			return worker.Run(ctx, kafka.ConsumerConfig{
				Brokers:    cfg.KafkaBrokers,
				Topic:      cfg.KafkaRequestTopic,
				GroupID:    cfg.KafkaGroupID,
				Handler:    worker.NewHandler(c.retriever, nil),
				FromOldest: fromOldest,
			})
		},
	}

	cmd.Flags().BoolVar(&fromOldest, "from-oldest", false, "start a new consumer group at the oldest offset")
	return cmd
}
