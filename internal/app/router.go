package app

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bot_guard/internal/services/biolink"
	"bot_guard/internal/services/commands"
	copyrightsvc "bot_guard/internal/services/copyright"
	"bot_guard/internal/services/edits"
	"bot_guard/internal/services/stickers"
	"bot_guard/internal/ui"
)

// routeUpdate classifies one inbound update into exactly one policy
// invocation. It is also the outer failure adapter: policy errors are
// logged and swallowed here so a single bad update never stops the loop.
func (a *App) routeUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.ChatMember != nil {
		a.handleChatMember(ctx, update.ChatMember)
	}

	if update.Message != nil {
		a.routeMessage(ctx, update.Message)
	}

	if update.ChannelPost != nil {
		a.handleChannelPost(ctx, update.ChannelPost)
	}

	if update.EditedMessage != nil {
		a.handleEdited(ctx, update.EditedMessage)
	}

	if update.EditedChannelPost != nil {
		a.handleEdited(ctx, update.EditedChannelPost)
	}
}

func (a *App) handleChatMember(ctx context.Context, change *tgbotapi.ChatMemberUpdated) {
	member := change.NewChatMember.User
	if member == nil {
		return
	}

	a.logger.Info("member status changed", "tg_id", member.ID, "username", member.UserName, "chat_id", change.Chat.ID)

	err := a.biolinkService.HandleJoin(ctx, biolink.JoinEvent{
		ChatID:   change.Chat.ID,
		UserID:   member.ID,
		Username: member.UserName,
		IsBot:    member.IsBot,
	})
	if err != nil {
		a.logger.Error("bio-link policy", "error", err, "tg_id", member.ID, "chat_id", change.Chat.ID)
	}
}

func (a *App) routeMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	if message.IsCommand() {
		a.routeCommand(ctx, message)
		return
	}

	if message.Sticker != nil {
		err := a.stickersService.HandleSticker(ctx, stickers.StickerEvent{
			ChatID:    message.Chat.ID,
			MessageID: message.MessageID,
			UserID:    message.From.ID,
			Username:  message.From.UserName,
		})
		if err != nil {
			a.logger.Error("sticker policy", "error", err, "chat_id", message.Chat.ID)
		}
		return
	}

	if message.Text != "" {
		a.handleText(ctx, message)
	}
}

func (a *App) handleText(ctx context.Context, message *tgbotapi.Message) {
	if message.ReplyToMessage != nil {
		_, err := a.biolinkService.HandleWarningReply(ctx, biolink.ReplyEvent{
			ChatID:           message.Chat.ID,
			MessageID:        message.MessageID,
			UserID:           message.From.ID,
			Username:         message.From.UserName,
			RepliedMessageID: message.ReplyToMessage.MessageID,
		})
		if err != nil {
			a.logger.Error("approval workflow", "error", err, "chat_id", message.Chat.ID)
		}
	}

	flagged, err := a.copyrightService.HandleMessage(ctx, copyrightsvc.MessageEvent{
		ChatID:    message.Chat.ID,
		MessageID: message.MessageID,
		UserID:    message.From.ID,
		Username:  message.From.UserName,
		Text:      message.Text,
	})
	if err != nil {
		a.logger.Error("copyright policy", "error", err, "chat_id", message.Chat.ID)
	}
	if flagged {
		return
	}

	if reply, ok := a.autoresponder.Match(message.Text); ok {
		a.replyTo(ctx, message, reply)
	}
}

func (a *App) handleChannelPost(ctx context.Context, post *tgbotapi.Message) {
	if post.Text == "" {
		return
	}

	var userID int64
	var username string
	if post.From != nil {
		userID = post.From.ID
		username = post.From.UserName
	}

	_, err := a.copyrightService.HandleMessage(ctx, copyrightsvc.MessageEvent{
		ChatID:    post.Chat.ID,
		MessageID: post.MessageID,
		UserID:    userID,
		Username:  username,
		Text:      post.Text,
	})
	if err != nil {
		a.logger.Error("copyright policy on channel post", "error", err, "chat_id", post.Chat.ID)
	}
}

func (a *App) handleEdited(ctx context.Context, message *tgbotapi.Message) {
	var userID int64
	var username string
	if message.From != nil {
		userID = message.From.ID
		username = message.From.UserName
	}

	err := a.editsService.HandleEdited(ctx, edits.EditedEvent{
		ChatID:    message.Chat.ID,
		MessageID: message.MessageID,
		UserID:    userID,
		Username:  username,
	})
	if err != nil {
		a.logger.Error("edit policy", "error", err, "chat_id", message.Chat.ID)
	}
}

func (a *App) routeCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	actorID := message.From.ID

	switch message.Command() {
	case "start":
		a.replyTo(ctx, message, ui.StartMessage())
	case "help":
		a.sendHTML(ctx, chatID, ui.HelpMessage())
	case "info":
		a.sendHTML(ctx, chatID, ui.InfoMessage())
	case "approve":
		reply, err := a.commandsService.Approve(ctx, chatID, actorID, message.CommandArguments())
		a.replyCommandResult(ctx, message, reply, err, "approve")
	case "reset_warnings":
		reply, err := a.commandsService.ResetWarnings(ctx, chatID, actorID, message.CommandArguments())
		a.replyCommandResult(ctx, message, reply, err, "reset warnings")
	case "delete":
		targetID := 0
		hasTarget := false
		if message.ReplyToMessage != nil {
			targetID = message.ReplyToMessage.MessageID
			hasTarget = true
		}
		reply, err := a.commandsService.Delete(ctx, chatID, actorID, targetID, hasTarget, message.CommandArguments())
		a.replyDeleteResult(ctx, message, reply, err)
	case "approve_sticker":
		reply, err := a.commandsService.ApproveSticker(ctx, chatID, actorID, message.CommandArguments())
		a.replyStickerApprovalResult(ctx, message, reply, err)
	case "copyright":
		reply, err := a.commandsService.ToggleCopyright(ctx, chatID, actorID)
		a.replyCopyrightResult(ctx, message, reply, err)
	}
}

func (a *App) replyCommandResult(ctx context.Context, message *tgbotapi.Message, reply string, err error, action string) {
	switch {
	case err == nil:
		a.replyTo(ctx, message, reply)
	case errors.Is(err, commands.ErrPermissionDenied):
		a.replyTo(ctx, message, ui.NoPermission())
	case errors.Is(err, commands.ErrMissingArgument):
		a.replyTo(ctx, message, ui.MissingUserID(action))
	case errors.Is(err, commands.ErrInvalidArgument):
		a.replyTo(ctx, message, ui.InvalidUserID())
	default:
		a.logger.Error("admin command", "error", err, "chat_id", message.Chat.ID)
	}
}

func (a *App) replyDeleteResult(ctx context.Context, message *tgbotapi.Message, reply string, err error) {
	switch {
	case err == nil:
		a.replyTo(ctx, message, reply)
	case errors.Is(err, commands.ErrNotAReply):
		a.replyTo(ctx, message, ui.ReplyRequired())
	case errors.Is(err, commands.ErrPermissionDenied):
		a.replyTo(ctx, message, ui.NoDeletePermission())
	default:
		a.logger.Error("delete command", "error", err, "chat_id", message.Chat.ID)
	}
}

func (a *App) replyStickerApprovalResult(ctx context.Context, message *tgbotapi.Message, reply string, err error) {
	switch {
	case err == nil:
		a.replyTo(ctx, message, reply)
	case errors.Is(err, commands.ErrPermissionDenied):
		a.replyTo(ctx, message, ui.OwnerOnlyStickerApproval())
	case errors.Is(err, commands.ErrMissingArgument):
		a.replyTo(ctx, message, ui.MissingUserID("approve for stickers"))
	case errors.Is(err, commands.ErrInvalidArgument):
		a.replyTo(ctx, message, ui.InvalidUserID())
	default:
		a.logger.Error("approve_sticker command", "error", err, "chat_id", message.Chat.ID)
	}
}

func (a *App) replyCopyrightResult(ctx context.Context, message *tgbotapi.Message, reply string, err error) {
	switch {
	case err == nil:
		a.replyTo(ctx, message, reply)
	case errors.Is(err, commands.ErrPermissionDenied):
		a.replyTo(ctx, message, ui.AdminOnlyCopyrightToggle())
	default:
		a.logger.Error("copyright command", "error", err, "chat_id", message.Chat.ID)
	}
}

func (a *App) replyTo(ctx context.Context, message *tgbotapi.Message, text string) {
	if text == "" {
		return
	}
	if err := a.tg.ReplyText(ctx, message.Chat.ID, message.MessageID, text); err != nil {
		a.logger.Error("send reply", "error", err, "chat_id", message.Chat.ID)
	}
}

func (a *App) sendHTML(ctx context.Context, chatID int64, text string) {
	if err := a.tg.SendHTML(ctx, chatID, text); err != nil {
		a.logger.Error("send message", "error", err, "chat_id", chatID)
	}
}
