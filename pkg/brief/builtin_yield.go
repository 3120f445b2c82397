package brief

import (
	"github.com/pressplate/pressplate/pkg/layout"
)

// yieldBrief is the single-page yield opportunity summary: strategy cards,
// launch timeline, return scenarios, and treasury backing.
func yieldBrief(theme Theme) *Brief {
	p := theme.ResolvePalette()

	return &Brief{
		Name: "yield",
		Blocks: []layout.Block{
			layout.Spacer{Px: 10},
			layout.LogoHeader{Path: theme.LogoPath, Brand: "OmniBazaar"},
			layout.Title{
				Text:     "YIELD OPPORTUNITY",
				Subtitle: "45-180% Projected APY | Dutch Auction LBP | Guaranteed Bonding Discounts",
			},
			layout.StatBar{Stats: []layout.Stat{
				{Value: "45-180%", Label: "APY Range"},
				{Value: "2.5B XOM", Label: "Treasury"},
				{Value: "16.6B", Label: "Total Supply"},
				{Value: "Day 1 Full Platform", Label: "Launch"},
			}},
			layout.CardGrid{
				Height: 280,
				Radius: 15,
				Cards: []layout.Card{
					{
						Title:    "LBP",
						Subtitle: "Dutch Auction",
						Value:    "80-150% APY",
						Bullets: []string{
							"Price starts HIGH",
							"Falls over 72 hours",
							"Enter at YOUR price",
							"No front-running",
						},
						Accent: p.Primary,
					},
					{
						Title:    "BONDING",
						Subtitle: "Guaranteed Discount",
						Value:    "182-260% APY",
						Bullets: []string{
							"5-15% discount",
							"7-30 day vesting",
							"No impermanent loss",
							"Compound returns",
						},
						Accent: p.Secondary,
					},
					{
						Title:    "MINING",
						Subtitle: "Passive Income",
						Value:    "36-365% APY",
						Bullets: []string{
							"Stake LP tokens",
							"30% immediate",
							"70% vests 90 days",
							"Early = highest APY",
						},
						Accent: p.AccentPurple,
					},
				},
			},
			layout.SectionTitle{Text: "LAUNCH TIMELINE"},
			layout.Timeline{Phases: []layout.TimelinePhase{
				{Timing: "Week 1-2", Title: "LBP Launch", Desc: "Dutch auction price discovery"},
				{Timing: "Week 2+", Title: "Bonding Opens", Desc: "5-15% guaranteed discounts"},
				{Timing: "Week 3+", Title: "Mining Active", Desc: "Stake LP for rewards"},
			}},
			layout.SectionTitle{Text: "RETURN SCENARIOS (6-MONTH)"},
			layout.Table{
				Headers:      []string{"Scenario", "LBP", "Bonding", "Mining", "Blended"},
				HighlightCol: 5,
				Rows: [][]string{
					{"Conservative", "+15%", "+26%", "+36%", "+25%"},
					{"Base Case", "+75%", "+67%", "+50%", "+65%"},
					{"Optimistic", "+275%", "+220%", "+175%", "+220%"},
				},
			},
			layout.Panel{
				Title: "TREASURY BACKING YOUR RETURNS",
				Lines: []string{
					"2.5 Billion XOM = $12.5M dedicated to investor rewards",
					"Self-funding model: Bonding & LBP generate USDC inflows exceeding commitments",
				},
			},
			layout.SectionTitle{Text: "LAUNCHING DAY 1"},
			layout.FeatureRow{Items: []layout.FeatureItem{
				{Name: "RWA Aggregator", Desc: "Tokenized real-world assets"},
				{Name: "DEX", Desc: "10,000+ orders/sec"},
				{Name: "Web3 Wallet", Desc: "128 chains"},
				{Name: "Marketplace", Desc: "Zero on-chain fees"},
			}},
			layout.CTABanner{
				Text:   "PARTICIPATION WINDOW IS LIMITED",
				Height: 60,
				Radius: 30,
			},
			layout.TextRow{Text: "omnibazaar.com | whitepaper.omnibazaar.com | tinyurl.com/obdeck1"},
			layout.TextRow{Text: "Not financial advice. Crypto investments carry significant risk."},
		},
	}
}
