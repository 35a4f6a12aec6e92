//go:build wireinject

package di

import (
	"github.com/google/wire"

	"zentra-notify/internal/app"
	"zentra-notify/internal/config"
	"zentra-notify/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(opts config.Options) (*app.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		provideReporter,
		provideClock,
		provideNotifier,
		usecase.NewNotificationSender,
		app.New,
		provideSchedule,
	)
	return nil, nil
}
