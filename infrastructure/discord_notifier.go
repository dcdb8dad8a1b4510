package infrastructure

import (
	"context"
	"fmt"

	"bookie/domain/entities"

	"github.com/bwmarrin/discordgo"
)

const (
	colorWon    = 0x2ECC71
	colorLost   = 0xE74C3C
	colorPushed = 0x95A5A6
)

// DiscordNotifier posts settlement summaries to a configured channel.
// It implements interfaces.ResultNotifier. Only the REST surface is
// used; no gateway connection is opened.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordNotifier creates a notifier posting to the given channel
func NewDiscordNotifier(token, channelID string) (*DiscordNotifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}, nil
}

// NotifySettled posts an embed describing a settled bet
func (n *DiscordNotifier) NotifySettled(ctx context.Context, bet *entities.Bet, result *entities.SettlementResult) error {
	embed := buildSettlementEmbed(bet, result)
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send settlement notification: %w", err)
	}
	return nil
}

func buildSettlementEmbed(bet *entities.Bet, result *entities.SettlementResult) *discordgo.MessageEmbed {
	var title string
	var color int
	switch result.Status {
	case entities.BetStatusWon:
		title = "Bet Won"
		color = colorWon
	case entities.BetStatusLost:
		title = "Bet Lost"
		color = colorLost
	default:
		title = "Bet Pushed"
		color = colorPushed
	}

	matchup := fmt.Sprintf("%s vs %s", bet.HomeTeam, bet.AwayTeam)
	if bet.IsParlay() {
		matchup = fmt.Sprintf("%d-leg parlay", len(bet.Legs))
	}

	return &discordgo.MessageEmbed{
		Title: title,
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Bet", Value: fmt.Sprintf("%s | %s", bet.BetType, matchup), Inline: false},
			{Name: "Stake", Value: fmt.Sprintf("$%.2f", bet.Stake), Inline: true},
			{Name: "Payout", Value: fmt.Sprintf("$%.2f", result.Payout), Inline: true},
			{Name: "Result", Value: result.Reason, Inline: false},
		},
	}
}
