package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/rabbitmq"
	"marketplace/internal/adapters/out/telegram"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot builds every dependency once and hands them to the
// handlers, the HTTP server and the jobs.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
	metrics    *metrics.Metrics

	dispatcher *commands.NotificationDispatcher
	publisher  ports.OrderEventPublisher

	closers []func() error
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    metrics.New("marketplace"),
	}

	planner, err := services.NewNotificationPlanner()
	if err != nil {
		return nil, fmt.Errorf("failed to load notification templates: %w", err)
	}

	notifier, err := c.buildNotifier()
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.dispatcher = commands.NewNotificationDispatcher(planner, notifier, config.NotifyTimeout, c.metrics, logger)
	c.publisher = c.buildPublisher()

	return c, nil
}

// buildNotifier routes device and broadcast pushes to RabbitMQ and store
// owner alerts to Telegram. A channel without configuration is logged only.
func (c *CompositionRoot) buildNotifier() (ports.Notifier, error) {
	fallback := notify.NewLogNotifier(c.logger)
	router := notify.NewRouter()

	if c.config.RabbitMQURL != "" {
		conn, err := rabbitmq.Dial(c.config.RabbitMQURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		c.closers = append(c.closers, conn.Close)

		push := rabbitmq.NewPushNotifier(conn)
		router.Route(notification.KindDevice, push).Route(notification.KindBroadcast, push)
	} else {
		c.logger.Warn("RABBITMQ_URL is not set, device and rider pool pushes are only logged")
		router.Route(notification.KindDevice, fallback).Route(notification.KindBroadcast, fallback)
	}

	if c.config.TelegramToken != "" {
		bot, err := telegram.NewBot(c.config.TelegramToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram bot: %w", err)
		}
		router.Route(notification.KindChat, telegram.NewChatNotifier(bot))
	} else {
		c.logger.Warn("TELEGRAM_TOKEN is not set, store owner alerts are only logged")
		router.Route(notification.KindChat, fallback)
	}

	return router, nil
}

func (c *CompositionRoot) buildPublisher() ports.OrderEventPublisher {
	client := kafka.NewClient(c.config.KafkaHost)
	if !client.Enabled() {
		c.logger.Warn("KAFKA_HOST is not set, order events are not published")
		return nil
	}

	publisher := kafka.NewOrderEventPublisher(client.NewWriter(c.config.KafkaOrderChangedTopic))
	c.closers = append(c.closers, publisher.Close)
	return publisher
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryFunc(), c.dispatcher)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.uowFactoryFunc(), c.dispatcher, c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateRemindRiderPoolCommandHandler() commands.RemindRiderPoolCommandHandler {
	return commands.NewRemindRiderPoolCommandHandler(c.uowFactoryFunc(), c.dispatcher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllStoresQueryHandler() queries.GetAllStoresQueryHandler {
	return queries.NewGetAllStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateStoreCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersQueryHandler(),
		c.CreateGetAllStoresQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reminder := jobs.NewRiderPoolReminderJob(
		c.CreateRemindRiderPoolCommandHandler(),
		c.config.ReminderSchedule,
		c.config.ReminderAfter,
		c.config.RequestTimeout+c.config.NotifyTimeout,
		c.logger,
	)
	return jobs.NewJobManager(reminder)
}

// Close releases broker connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
