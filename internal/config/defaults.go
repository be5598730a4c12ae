package config

import "github.com/eachlabs/parley/internal/channel"

// Default returns the built-in configuration: the stock channel set, a short
// welcome backlog, and pruning disabled with a ten-line window.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:          80,
			Height:         20,
			MaxChatInput:   128,
			MaxMenuInput:   10,
			DefaultChannel: 0,
			AltScreen:      true,
		},
		History: HistoryConfig{
			PruneEnabled: false,
			PruneLength:  10,
		},
		Channels: []ChannelConfig{
			{Name: "General", Color: channel.White},
			{Name: "Combat Log", Color: channel.Red},
			{Name: "Whisper", Color: channel.Purple},
			{Name: "Group", Color: channel.Blue},
			{Name: "Guild", Color: channel.Green},
		},
		Seed: []SeedMessage{
			{0, "Welcome to the server 'Turnshroom Habitat'"},
			{0, "Wizz: Hey"},
			{0, "Thorny: Yo"},
			{0, "Mufk: SUp man"},
			{2, "Kazaghual: anyone w2b this axe I just found?"},
			{2, "PizzaMan: Yo I'm here to deliver this pizza, I'll just leave it over here by the dragon ok?"},
			{3, "Moo:grass plz"},
			{4, "Aladin: STFU Jafar"},
			{5, "Rocky: JKSLFJS"},
			{1, "You took 31 damage."},
			{1, "You've given 25 damage."},
			{1, "You took 61 damage."},
			{1, "You've given 20 damage."},
			{4, "A gender chalks in the vintage coke. When will the murder pocket a wanted symptom?"},
			{3, "The truth collars the bass into a lower heel. A squashed machinery kisses the abandon."},
			{1, "The cap ducks inside the freedom. The mum hammers the apathy above our preserved ozone."},
			{2, "A flesh hazards the sneaking tooth. An analyst steams before an instinct!"},
			{1, "Opposite the initiative scratches an inane plant. Why won't the late school experiment with a crown?"},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
