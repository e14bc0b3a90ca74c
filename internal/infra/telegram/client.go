package telegram

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bot_guard/internal/domain/model"
)

type UpdateHandler func(context.Context, tgbotapi.Update)

// Client wraps the long-poll transport and exposes the platform
// capabilities the policies run on: send, delete, restrict, admin list
// and bio fetches. With an empty token it runs in dry mode and every
// call is a no-op.
type Client struct {
	api         *tgbotapi.BotAPI
	logger      *slog.Logger
	handler     UpdateHandler
	pollTimeout int
	dryRun      bool
}

func NewClient(token string, pollTimeout int, logger *slog.Logger, handler UpdateHandler) (*Client, error) {
	if handler == nil {
		return nil, errors.New("telegram update handler is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if strings.TrimSpace(token) == "" {
		return &Client{
			logger:      logger,
			handler:     handler,
			pollTimeout: pollTimeout,
			dryRun:      true,
		}, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:         api,
		logger:      logger,
		handler:     handler,
		pollTimeout: pollTimeout,
	}, nil
}

func (c *Client) Start(ctx context.Context) error {
	if c.dryRun {
		c.logger.Warn("BOT_TOKEN is empty, running in dry mode")
		<-ctx.Done()
		return nil
	}

	timeout := c.pollTimeout
	if timeout <= 0 {
		timeout = 30
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = timeout
	// chat_member updates are not delivered unless requested explicitly.
	updateConfig.AllowedUpdates = []string{
		tgbotapi.UpdateTypeMessage,
		tgbotapi.UpdateTypeEditedMessage,
		tgbotapi.UpdateTypeChannelPost,
		tgbotapi.UpdateTypeEditedChannelPost,
		tgbotapi.UpdateTypeChatMember,
	}
	updates := c.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			c.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			c.handler(ctx, update)
		}
	}
}

// SendText sends a plain message and returns the sent message id.
func (c *Client) SendText(_ context.Context, chatID int64, text string) (int, error) {
	if c.dryRun {
		return 0, nil
	}
	sent, err := c.api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

// SendHTML sends a message with HTML formatting enabled.
func (c *Client) SendHTML(_ context.Context, chatID int64, text string) error {
	if c.dryRun {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := c.api.Send(msg)
	return err
}

// ReplyText sends a message as a reply to an existing one.
func (c *Client) ReplyText(_ context.Context, chatID int64, replyToMessageID int, text string) error {
	if c.dryRun {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyToMessageID
	_, err := c.api.Send(msg)
	return err
}

func (c *Client) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	if c.dryRun {
		return nil
	}
	_, err := c.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

// RestrictSending revokes a member's send permission until the given time.
func (c *Client) RestrictSending(_ context.Context, chatID, userID int64, until time.Time) error {
	if c.dryRun {
		return nil
	}
	restrict := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
		UntilDate:   until.Unix(),
		Permissions: &tgbotapi.ChatPermissions{CanSendMessages: false},
	}
	_, err := c.api.Request(restrict)
	return err
}

func (c *Client) ChatAdmins(_ context.Context, chatID int64) ([]model.ChatAdmin, error) {
	if c.dryRun {
		return []model.ChatAdmin{}, nil
	}
	members, err := c.api.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, err
	}

	admins := make([]model.ChatAdmin, 0, len(members))
	for _, member := range members {
		if member.User == nil {
			continue
		}
		admins = append(admins, model.ChatAdmin{
			UserID:   member.User.ID,
			Username: member.User.UserName,
			IsOwner:  member.Status == "creator",
		})
	}
	return admins, nil
}

// UserBio fetches the free-text bio of a user's profile. Telegram only
// returns the bio on a direct chat-info request for the user id.
func (c *Client) UserBio(_ context.Context, userID int64) (string, error) {
	if c.dryRun {
		return "", nil
	}
	chat, err := c.api.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: userID},
	})
	if err != nil {
		return "", err
	}
	return chat.Bio, nil
}
