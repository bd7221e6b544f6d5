package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/robalobadob/boggle/internal/httpserver"
	"github.com/robalobadob/boggle/internal/store"
)

const (
	addrFlagName   = "addr"
	originFlagName = "client-origin"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			threshold, err := hintThreshold()
			if err != nil {
				return err
			}
			ix := loadIndex()
			gen, err := newGenerator(ix)
			if err != nil {
				return err
			}
			oracle, closeOracle, err := openOracle(ctx)
			if err != nil {
				return err
			}
			defer closeOracle()

			srv := httpserver.New(httpserver.Options{
				Index:         ix,
				Generator:     gen,
				Hints:         newHintEngine(ix, oracle),
				Cache:         store.NewMemoryCache(store.DefaultCapacity),
				ClientOrigin:  viper.GetString(clientOriginKey),
				TicketSecret:  []byte(viper.GetString(ticketSecretKey)),
				TicketTTL:     viper.GetDuration(ticketTTLKey),
				DailySalt:     viper.GetString(dailySaltKey),
				HintThreshold: &threshold,
			})
			addr := viper.GetString(serverAddrKey)
			log.Info().Str("addr", addr).Str("dictionary", ix.Source()).Int("words", ix.Len()).Msg("starting boggle server")
			return srv.Start(ctx, addr)
		},
	}

	cmd.Flags().String(addrFlagName, defaultServerAddr, "listen address")
	bindFlagToConfig(cmd.Flags().Lookup(addrFlagName), serverAddrKey)
	cmd.Flags().String(originFlagName, defaultClientOrigin, "allowed CORS origin")
	bindFlagToConfig(cmd.Flags().Lookup(originFlagName), clientOriginKey)

	return cmd
}
