package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

var ErrMissingEventID = errors.New("gcalendar: event id is required")

type client struct {
	service *calendar.Service
}

// NewFromCredentialsFile creates a client from a service account or an
// installed-app credentials file. Installed-app credentials need a token at
// TokenPath(credentialsPath).
func NewFromCredentialsFile(ctx context.Context, credentialsPath string) (ICalendar, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewFromCredentialsJSON(ctx, data, TokenPath(credentialsPath))
}

// NewFromCredentialsJSON creates a client from raw credentials. tokenPath is
// only read for installed-app credentials.
func NewFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (ICalendar, error) {
	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		return newWithOptions(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	var installed struct {
		Installed struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &installed); jsonErr != nil || installed.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a token at %s: %w", tokenPath, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	oauthCfg := &oauth2.Config{
		ClientID:     installed.Installed.ClientID,
		ClientSecret: installed.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	return newWithOptions(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)))
}

// NewFromHTTP creates a client on a pre-authorized HTTP client.
func NewFromHTTP(ctx context.Context, httpClient *http.Client) (ICalendar, error) {
	return newWithOptions(ctx, option.WithHTTPClient(httpClient))
}

func newWithOptions(ctx context.Context, opts ...option.ClientOption) (ICalendar, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &client{service: svc}, nil
}

// CreateEvent inserts an event with embedded offsets so no zone name is needed.
func (c *client) CreateEvent(ctx context.Context, req CreateEventRequest) (Event, error) {
	end := req.EndTime
	if end.IsZero() {
		end = req.StartTime.Add(DefaultEventDuration)
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       &calendar.EventDateTime{DateTime: req.StartTime.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return Event{
		ID:        created.Id,
		Summary:   created.Summary,
		Location:  created.Location,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   end,
	}, nil
}

// DeleteEvent removes an event.
func (c *client) DeleteEvent(ctx context.Context, calID, eventID string) error {
	if eventID == "" {
		return ErrMissingEventID
	}
	if err := c.service.Events.Delete(calendarID(calID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}
