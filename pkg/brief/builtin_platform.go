package brief

import (
	"github.com/pressplate/pressplate/pkg/hexcolor"
	"github.com/pressplate/pressplate/pkg/layout"
)

// platformBrief is the full platform overview: market cards,
// differentiators, architecture split, wallet features, earning programs,
// roadmap, and tokenomics.
func platformBrief(theme Theme) *Brief {
	p := theme.ResolvePalette()
	red := hexcolor.RGB("#e74c3c")
	green := hexcolor.RGB("#2ecc71")
	ctaBottom := hexcolor.RGB("#009977")

	return &Brief{
		Name: "platform",
		Blocks: []layout.Block{
			layout.BrandHeader{GlyphPath: theme.GlyphPath, Brand: "OmniBazaar"},
			layout.Title{
				Text:     "PLATFORM OVERVIEW",
				Subtitle: "One App. Every Market. Zero Middlemen.",
			},
			layout.StatBar{Stats: []layout.Stat{
				{Value: "70+", Label: "Blockchains"},
				{Value: "10,000+", Label: "Orders/Sec"},
				{Value: "1-2s", Label: "Finality"},
				{Value: "ZERO", Label: "Gas Fees"},
				{Value: "12+", Label: "Languages"},
			}},
			layout.SectionTitle{Text: "SIX INTEGRATED MARKETS"},
			layout.CardGrid{
				Height:    192,
				Radius:    10,
				AccentBar: true,
				Cards: []layout.Card{
					{
						Title:  "GOODS &\nSERVICES",
						Lines:  []string{"Zero fees", "P2P escrow", "Seller ratings"},
						Footer: "$3.5T+ sector",
						Accent: p.Primary,
					},
					{
						Title:  "DEX",
						Lines:  []string{"10K+ orders/sec", "MEV protection", "Spot & perpetuals"},
						Footer: "$1.5T+ sector",
						Accent: p.Secondary,
					},
					{
						Title:  "RWA",
						Lines:  []string{"Stocks & bonds", "Real estate", "Treasuries"},
						Footer: "$16T by 2030",
						Accent: p.AccentPurple,
					},
					{
						Title:  "YIELD",
						Lines:  []string{"Staking & LP", "APY comparison", "Risk scoring"},
						Footer: "$100B+ TVL",
						Accent: p.AccentOrange,
					},
					{
						Title:  "NFTs",
						Lines:  []string{"Multi-chain", "Send & receive", "List for sale"},
						Footer: "$24B+ sector",
						Accent: red,
					},
					{
						Title:  "PREDICTIONS",
						Lines:  []string{"Polymarket", "Omen aggregation", "Cross-chain"},
						Footer: "$27.9B+ sector",
						Accent: green,
					},
				},
			},
			layout.SectionTitle{Text: "WHY OMNIBAZAAR IS DIFFERENT", LeadRule: true},
			layout.CardGrid{
				Height: 215,
				Margin: 50,
				Cards: []layout.Card{
					{
						Title: "DECENTRALIZED\n& SELF-SOVEREIGN",
						Bullets: []string{
							"No central servers",
							"No third-party data",
							"No custodial risk",
							"Users hold their keys",
							"Permissionless validators",
						},
						Accent: p.Primary,
					},
					{
						Title: "PRIVACY-ENABLED\n(COTI V2)",
						Bullets: []string{
							"pXOM privacy token",
							"MPC garbled circuits",
							"Shielded transactions",
							"Optional - user choice",
							"0.5% conversion fee",
						},
						Accent: p.AccentPurple,
					},
					{
						Title: "PROOF OF\nPARTICIPATION",
						Bullets: []string{
							"100-point scoring",
							"KYC + reputation",
							"Staking + activity",
							"Community policing",
							"50 pts to validate",
						},
						Accent: p.Secondary,
					},
				},
			},
			layout.SectionTitle{Text: "TRUSTLESS HYBRID ARCHITECTURE", LeadRule: true},
			layout.CardGrid{
				Height:       260,
				Gap:          30,
				BulletPrefix: "✓",
				Cards: []layout.Card{
					{
						Title: "ON-CHAIN (Trustless)",
						Bullets: []string{
							"DEX settlement - dual EIP-712 sigs",
							"Multi-hop swap router",
							"Private DEX (COTI V2 MPC)",
							"Escrow - 2-of-3 multisig",
							"RWA AMM + compliance oracle",
							"MEV commit-reveal protection",
							"Circuit breaker emergency stop",
						},
						Accent: p.Primary,
					},
					{
						Title: "OFF-CHAIN (Validators)",
						Bullets: []string{
							"Order matching - 10K+ orders/sec",
							"Marketplace listings on IPFS",
							"Price discovery & routing",
							"P2P encrypted chat relay",
							"KYC document processing",
							"Participation scoring",
							"Search engine & indexing",
						},
						Accent: p.Secondary,
					},
				},
			},
			layout.SectionTitle{Text: "OMNIWALLET: 70+ CHAINS, ONE WALLET", LeadRule: true},
			layout.CardGrid{
				Height: 150,
				Radius: 10,
				Cards: []layout.Card{
					{
						Title:  "Multi-Chain",
						Lines:  []string{"ETH, BTC, SOL, DOT,", "AVAX, ADA, XRP, NEAR,", "20+ EVM networks"},
						Accent: p.Primary,
					},
					{
						Title:  "Hardware\nWallets",
						Lines:  []string{"Ledger & Trezor", "USB + Bluetooth", "Secure signing"},
						Accent: p.Secondary,
					},
					{
						Title:  "Easy\nOnboarding",
						Lines:  []string{"Email/password signup", "Embedded wallet", "5,000 XOM bonus"},
						Accent: p.AccentOrange,
					},
					{
						Title:  "Accessibility",
						Lines:  []string{"12+ languages", "ARIA compliant", "Dark/Light mode"},
						Accent: p.AccentPurple,
					},
				},
			},
			layout.TextRow{
				Text: "BIP39 HD wallet  •  Cross-chain bridge  •  " +
					"ENS-style usernames (alice.omnibazaar)  •  " +
					"NFT gallery  •  Biometric auth  •  Listing imports",
				Advance: 35,
			},
			layout.SectionTitle{Text: "EARNING OPPORTUNITIES", LeadRule: true},
			layout.TextRow{
				Text:    "LIQUIDITY PROGRAM  -  45-180% Projected APY",
				Size:    24,
				Bold:    true,
				Color:   p.Primary,
				Advance: 30,
			},
			layout.TextRow{
				Text:    "2.5 Billion XOM treasury backing your returns",
				Advance: 28,
			},
			layout.CardGrid{
				Height:    200,
				Margin:    50,
				AccentBar: true,
				Gradient:  true,
				Cards: []layout.Card{
					{
						Title:    "LBP",
						Subtitle: "Dutch Auction",
						Value:    "80-150% APY",
						Bullets: []string{
							"Price starts HIGH, falls 72hr",
							"Enter at YOUR price",
							"No front-running",
							"Fair price discovery",
						},
						Accent: p.Primary,
					},
					{
						Title:    "BONDING",
						Subtitle: "Guaranteed Discount",
						Value:    "182-260% APY",
						Bullets: []string{
							"5-15% discount locked in",
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
							"30% immediate payout",
							"70% vests over 90 days",
							"Early = highest APY",
						},
						Accent: p.AccentPurple,
					},
				},
			},
			layout.TextRow{
				Text:    "STAKING REWARDS  -  5-12% APR",
				Size:    24,
				Bold:    true,
				Color:   p.AccentOrange,
				Advance: 32,
			},
			layout.Table{
				Headers:      []string{"Stake Amount", "Base APR", "+ Duration", "Max APR"},
				ColX:         []int{150, 430, 680, 950},
				Margin:       60,
				HighlightCol: 4,
				Rows: [][]string{
					{"1 - 999K XOM", "5%", "+0-3%", "8%"},
					{"1M - 9.99M XOM", "6%", "+0-3%", "9%"},
					{"10M - 99.9M XOM", "7%", "+0-3%", "10%"},
					{"100M - 999M XOM", "8%", "+0-3%", "11%"},
					{"1B+ XOM", "9%", "+0-3%", "12%"},
				},
				Caption: "Duration: No lock (+0%)  •  1 month (+1%)  " +
					"•  6 months (+2%)  •  2 years (+3%)",
			},
			layout.TextRow{
				Text:    "ADDITIONAL REVENUE STREAMS",
				Size:    24,
				Bold:    true,
				Color:   p.Text,
				Advance: 32,
			},
			layout.CardGrid{
				Height:     105,
				Radius:     10,
				Gradient:   true,
				AccentFill: true,
				Cards: []layout.Card{
					{
						Title:  "MARKETPLACE",
						Lines:  []string{"Sell goods and services", "with low 1% fee"},
						Accent: p.Primary,
					},
					{
						Title:  "HOST LISTINGS",
						Lines:  []string{"70% of 0.25% on every", "sale + share block rewards"},
						Accent: green,
					},
					{
						Title:  "REFERRALS",
						Lines:  []string{"70% of 0.25%", "on every sale"},
						Accent: p.AccentOrange,
					},
					{
						Title:  "VALIDATORS",
						Lines:  []string{"15.6 XOM/block", "+ tx & service fees"},
						Accent: p.Secondary,
					},
					{
						Title:  "ARBITRATION",
						Lines:  []string{"70% of 5%", "dispute fee"},
						Accent: p.AccentPurple,
					},
				},
			},
			layout.SectionTitle{Text: "COMING SOON", LeadRule: true},
			layout.CardGrid{
				Height: 220,
				Margin: 50,
				Cards: []layout.Card{
					{
						Title: "PREDICTION\nMARKET",
						Bullets: []string{
							"$27.9B+ sector volume",
							"Polymarket + Omen",
							"Cross-chain aggregator",
							"Trade with any token",
							"On-chain price data",
							"Position tracking",
						},
						Accent: p.AccentOrange,
					},
					{
						Title: "BROWSER\nEXTENSION",
						Bullets: []string{
							"Wallet + DEX + Market",
							"DApp connectivity",
							"Hardware wallets",
							"Privacy swaps",
							"Chrome/Firefox/Brave",
							"Compact popup UX",
						},
						Accent: p.Secondary,
					},
					{
						Title: "MOBILE APP\n(iOS & Android)",
						Bullets: []string{
							"Full feature parity",
							"Native camera & QR",
							"Biometric auth",
							"Push notifications",
							"Deep linking",
							"60% shared code",
						},
						Accent: p.Primary,
					},
				},
			},
			layout.SectionTitle{Text: "TOKENOMICS SNAPSHOT", LeadRule: true},
			layout.KVPanel{
				Left: []layout.KVPair{
					{Label: "Token:", Value: "XOM (public) / pXOM (private)"},
					{Label: "Total Supply:", Value: "16.6 Billion XOM"},
					{Label: "Circulating:", Value: "~4.13 Billion XOM"},
					{Label: "Emissions:", Value: "~12.47B over 40 years"},
				},
				Right: []layout.KVPair{
					{Label: "Blockchain:", Value: "Avalanche Subnet-EVM"},
					{Label: "Consensus:", Value: "Snowman (1-2s finality)"},
					{Label: "Welcome Bonus:", Value: "Up to 5,000 XOM"},
					{Label: "Referral Bonus:", Value: "Up to 2,500 XOM"},
				},
			},
			layout.CTABanner{
				Text:   "OMNIBAZAAR: THERE'S A MARKET FOR EVERYTHING",
				Bottom: ctaBottom,
			},
			layout.TextRow{
				Text: "omnibazaar.com  |  whitepaper.omnibazaar.com  |  tinyurl.com/obdeck1",
			},
			layout.TextRow{
				Text: "Not financial advice. Crypto investments carry significant risk.",
			},
		},
	}
}
