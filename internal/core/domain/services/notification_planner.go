package services

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"text/template"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplates []byte

// ErrTemplateNotFound is returned when an audience of an edge has no template.
var ErrTemplateNotFound = errors.New("notification template not found")

// Template keys of events that are not transitions.
const (
	checkoutEvent = "checkout"
	reminderEvent = "reminder"
)

type templateSource struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type templateFile struct {
	Checkout    map[string]templateSource            `yaml:"checkout"`
	Reminder    map[string]templateSource            `yaml:"reminder"`
	Transitions map[string]map[string]templateSource `yaml:"transitions"`
}

type messageTemplate struct {
	title *template.Template
	body  *template.Template
}

// templateData is what templates can reference.
type templateData struct {
	OrderID   string
	ShortID   string
	StoreName string
	Total     string
	ItemCount int
	RiderID   string
	From      string
	To        string
	ActorRole string
	UpdatedAt string
}

// NotificationPlanner is a domain service that turns an applied transition
// into the notifications its edge calls for.
//
// Business rules:
//   - Each edge lists its audiences; one notification per audience
//   - The party that made the change is not told about it
//   - A store owner without a chat gets nothing
//
// Example usage:
//
//	planner, _ := NewNotificationPlanner()
//	change, _ := o.Transition(actor, order.Cooking, time.Now())
//	notifications, err := planner.PlanTransition(change, o, s)
type NotificationPlanner struct {
	// templates is keyed by "<event>/<audience>"
	templates map[string]messageTemplate
}

// NewNotificationPlanner loads the built-in templates.
func NewNotificationPlanner() (*NotificationPlanner, error) {
	return NewNotificationPlannerFromYAML(defaultTemplates)
}

// NewNotificationPlannerFromYAML parses templates in the templates.yaml layout.
func NewNotificationPlannerFromYAML(data []byte) (*NotificationPlanner, error) {
	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse notification templates: %w", err)
	}

	p := &NotificationPlanner{templates: make(map[string]messageTemplate)}

	for audience, src := range file.Checkout {
		if err := p.add(checkoutEvent, audience, src); err != nil {
			return nil, err
		}
	}
	for audience, src := range file.Reminder {
		if err := p.add(reminderEvent, audience, src); err != nil {
			return nil, err
		}
	}
	for event, audiences := range file.Transitions {
		if _, err := order.ParseStatus(event); err != nil {
			return nil, fmt.Errorf("notification templates: %w", err)
		}
		for audience, src := range audiences {
			if err := p.add(event, audience, src); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

func (p *NotificationPlanner) add(event, audience string, src templateSource) error {
	name := templateKey(event, audience)

	title, err := template.New(name + "/title").Option("missingkey=error").Parse(src.Title)
	if err != nil {
		return fmt.Errorf("notification template %s: %w", name, err)
	}
	body, err := template.New(name + "/body").Option("missingkey=error").Parse(src.Body)
	if err != nil {
		return fmt.Errorf("notification template %s: %w", name, err)
	}

	p.templates[name] = messageTemplate{title: title, body: body}
	return nil
}

// PlanCheckout builds the alert sent to the store owner for a new order.
func (p *NotificationPlanner) PlanCheckout(o *order.Order, s *store.Store) ([]notification.Notification, error) {
	if err := errors.Join(o.Validate(), s.Validate()); err != nil {
		return nil, err
	}

	chatID, ok := s.OwnerChatID()
	if !ok {
		return nil, nil
	}

	data := newTemplateData(o, s)
	title, body, err := p.render(checkoutEvent, order.AudienceStoreOwner, data)
	if err != nil {
		return nil, err
	}

	n, err := notification.NewChat(chatID, o.ID(), title, body)
	if err != nil {
		return nil, err
	}
	return []notification.Notification{n}, nil
}

// PlanRiderPoolReminder builds a repeated broadcast for an order nobody
// has claimed yet.
func (p *NotificationPlanner) PlanRiderPoolReminder(o *order.Order, s *store.Store) ([]notification.Notification, error) {
	if err := errors.Join(o.Validate(), s.Validate()); err != nil {
		return nil, err
	}
	if o.Status() != order.NotifyingRiders {
		return nil, nil
	}

	title, body, err := p.render(reminderEvent, order.AudienceRiderPool, newTemplateData(o, s))
	if err != nil {
		return nil, err
	}

	n, err := notification.NewBroadcast(o.ID(), title, body)
	if err != nil {
		return nil, err
	}
	return []notification.Notification{n}, nil
}

// PlanTransition builds the notifications for change. o is the order after
// the change was applied.
func (p *NotificationPlanner) PlanTransition(
	change order.Change,
	o *order.Order,
	s *store.Store,
) ([]notification.Notification, error) {
	if err := errors.Join(o.Validate(), s.Validate()); err != nil {
		return nil, err
	}

	data := newTemplateData(o, s)
	data.From = change.From.String()
	data.To = change.To.String()
	data.ActorRole = change.Actor.Role().String()

	var (
		result  []notification.Notification
		errList []error
	)
	for _, audience := range change.Edge.Audiences() {
		if isActorAudience(change.Actor, audience) {
			continue
		}

		n, ok, err := p.planFor(audience, change.To.String(), data, o, s)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if ok {
			result = append(result, n)
		}
	}

	return result, errors.Join(errList...)
}

func (p *NotificationPlanner) planFor(
	audience order.Audience,
	event string,
	data templateData,
	o *order.Order,
	s *store.Store,
) (notification.Notification, bool, error) {
	var chatID int64
	if audience == order.AudienceStoreOwner {
		var ok bool
		if chatID, ok = s.OwnerChatID(); !ok {
			return notification.Notification{}, false, nil
		}
	}

	title, body, err := p.render(event, audience, data)
	if err != nil {
		return notification.Notification{}, false, err
	}

	var n notification.Notification
	switch audience {
	case order.AudienceCustomer:
		n, err = notification.NewDevice(o.CustomerID(), o.ID(), title, body)
	case order.AudienceStoreOwner:
		n, err = notification.NewChat(chatID, o.ID(), title, body)
	case order.AudienceRiderPool:
		n, err = notification.NewBroadcast(o.ID(), title, body)
	default:
		err = fmt.Errorf("unsupported audience %d", audience)
	}
	if err != nil {
		return notification.Notification{}, false, err
	}
	return n, true, nil
}

func (p *NotificationPlanner) render(event string, audience order.Audience, data templateData) (string, string, error) {
	name := templateKey(event, audience.String())
	tmpl, ok := p.templates[name]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	var title, body bytes.Buffer
	if err := tmpl.title.Execute(&title, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", name, err)
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", name, err)
	}
	return title.String(), body.String(), nil
}

// isActorAudience reports whether audience is the party that made the change.
func isActorAudience(actor order.Actor, audience order.Audience) bool {
	switch audience {
	case order.AudienceCustomer:
		return actor.Role() == order.RoleCustomer
	case order.AudienceStoreOwner:
		return actor.Role() == order.RoleStore
	default:
		return false
	}
}

func newTemplateData(o *order.Order, s *store.Store) templateData {
	id := o.ID().String()
	data := templateData{
		OrderID:   id,
		ShortID:   id[:8],
		StoreName: s.Name(),
		Total:     o.Total().String(),
		ItemCount: len(o.Items()),
		UpdatedAt: o.UpdatedAt().Format("15:04 MST"),
	}
	if rider := o.Rider(); rider != nil {
		data.RiderID = rider.String()
	}
	return data
}

func templateKey(event, audience string) string {
	return event + "/" + audience
}
