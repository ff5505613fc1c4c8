package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/toastd/toastd/internal/server"
	"github.com/toastd/toastd/toast"
)

var (
	sendAddr  string
	sendLevel string
	sendTTL   int
)

var sendCmd = &cobra.Command{
	Use:   "send [text...]",
	Short: "Push a toast to a running toastd instance",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendAddr, "addr", "127.0.0.1:9090", "address of the listening instance")
	sendCmd.Flags().StringVar(&sendLevel, "level", "info", "toast level (info, warn, error)")
	sendCmd.Flags().IntVar(&sendTTL, "ttl", 0, "toast lifetime in seconds (0 for the receiver's default)")
	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	if _, err := toast.ParseLevel(sendLevel); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	payload := server.NoticePayload{
		Level:      sendLevel,
		Text:       strings.Join(args, " "),
		TTLSeconds: sendTTL,
	}
	if err := server.Send(ctx, sendAddr, payload); err != nil {
		return fmt.Errorf("sending toast: %w", err)
	}
	return nil
}
