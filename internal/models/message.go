package models

type Channel string

const (
	ChannelGeneral Channel = "general"
	ChannelWins    Channel = "wins"
	ChannelQA      Channel = "qa"
)

// Channels lists the board partitions in display order.
var Channels = []Channel{ChannelGeneral, ChannelWins, ChannelQA}

// ParseChannel maps free input onto the closed set, falling back to general.
func ParseChannel(s string) Channel {
	for _, ch := range Channels {
		if string(ch) == s {
			return ch
		}
	}
	return ChannelGeneral
}

type Message struct {
	ID          FlexString `json:"_id"`
	MemberEmail string     `json:"member_email"`
	Content     string     `json:"content"`
	Channel     Channel    `json:"channel"`
	CreatedAt   string     `json:"created_at"`
}

type MessageInput struct {
	MemberEmail string  `json:"member_email"`
	Content     string  `json:"content"`
	Channel     Channel `json:"channel"`
}
