package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Danik911/dublin-accommodation-bot/models"
	"github.com/Danik911/dublin-accommodation-bot/utils"
)

// TelegramNotifier pushes a run summary to a Telegram chat. Delivery is
// best-effort: a failed send is logged, never fatal.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *utils.Logger
}

// NewTelegramNotifier authenticates the bot token.
func NewTelegramNotifier(token string, chatID int64, logger *utils.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	logger.Info("[notify] Telegram bot authorized as @%s", bot.Self.UserName)
	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// NotifyRun sends the run summary.
func (n *TelegramNotifier) NotifyRun(result *models.RunResult) {
	text := fmt.Sprintf(
		"Accommodation search finished\n"+
			"Listings found: %d\n"+
			"Messages generated: %d\n"+
			"Free accommodation candidates: %d",
		result.Summary.TotalListings,
		result.Summary.MessagesGenerated,
		result.Summary.FreeAccommodationFound,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Warn("[notify] Telegram send failed: %v", err)
	}
}
