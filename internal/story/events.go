package story

import (
	"github.com/talgya/utopian-sands/internal/player"
)

// Items with engine-visible meaning.
const (
	ItemMoney       = "Money"
	ItemStolenGoods = "Stolen Goods"
)

// Randomized branch thresholds.
const (
	WarningSurvivalChance = 0.3  // Event 1, shout warning
	RabiesChance          = 0.05 // Event 3, adopt the dog
	TreasureChance        = 0.5  // Event 4, explore the abandoned house
	EscapeChance          = 0.7  // Event 5, run from the police
)

// LegitimacyThreshold is the authorities standing above which the police in
// event 5 read as legitimate.
const LegitimacyThreshold = 60

func rep(authorities, citizens, underworld int) player.ReputationDelta {
	return player.ReputationDelta{Authorities: authorities, Citizens: citizens, Underworld: underworld}
}

// Events returns the seven authored events in play order. Each call builds
// fresh values so callers may not alias each other's tables.
func Events() []*Event {
	return []*Event{
		fallFromGrace(),
		ouch(),
		updog(),
		houses(),
		justice(),
		kickBack(),
		coins(),
	}
}

func fallFromGrace() *Event {
	return &Event{
		ID:      1,
		Title:   "FALL FROM GRACE",
		Tagline: []string{"did it hurt when you fell from heaven?"},
		Root: &Stage{
			Intro: []string{
				"You awaken mid-air, plummeting toward a crowded marketplace.",
				"Below you, five innocent people go about their daily lives.",
				"You notice a mattress has suddenly appeared near you.",
			},
			LogFmt: "Falling event: Choice %d",
			Options: []Option{
				{Label: "Create a spectacle (Embrace the chaos)", Result: Consequence{
					Law: 25, Good: 25, Tag: player.ChaoticEvil,
					Reputation: rep(-30, -30, 30),
					Narration: []string{
						"You let out a maniacal laugh as you fall!",
						"You crash through a market stall, causing panic and destruction.",
						"You're injured but alive... and strangely exhilarated.",
					},
					Health: -40,
				}},
				{Label: "Check legal manual (Consult the technical rules before acting)", Result: Consequence{
					Law: -15, Tag: player.LawfulNeutral,
					Reputation: rep(15, 0, 0),
					Narration: []string{
						"You frantically check the safety manual...",
						"Too slow. Haha. The impact is fatal, but you died by the book?",
					},
					Fatal: true,
				}},
				{Label: "Take a random guy with you (Equalize fate)", Result: Consequence{
					Good: 20, Tag: player.NeutralEvil,
					Reputation: rep(-10, -15, 20),
					Narration: []string{
						"You grab someone on your way down.",
						"You both crash together. You survive, they don't.",
					},
					Health: -25,
				}},
				{Label: "Push others aside (Save others at your expense)", Result: Consequence{
					Law: 20, Tag: player.ChaoticNeutral,
					Reputation: rep(-20, -10, 10),
					Narration: []string{
						"You flail wildly, pushing people out of the way.",
						"You survive, others are injured. You feel... liberated?",
					},
					Health: -15,
				}},
				{Label: "Deploy mattress (Follow safety protocol, accept consequences)", Result: Consequence{
					Law: -20, Good: -15, Tag: player.LawfulGood,
					Reputation: rep(10, 5, 0),
					Narration: []string{
						"You deploy the mattress according to protocol.",
						"You survive, but five people perish. The law protects you.",
					},
					Guilt: 25,
				}},
				{Label: "Use people as cushion (Within rights, maximize survival)", Result: Consequence{
					Law: -10, Good: 15, Tag: player.LawfulEvil,
					Reputation: rep(5, -20, 15),
					Narration: []string{
						"You aim for the densest crowd - they'll cushion your fall.",
						"You survive unharmed. The law considers this an 'unfortunate accident.'",
					},
				}},
				{Label: "Aim for empty spot (Improvise solution, break protocol)", Result: Consequence{
					Law: 15, Good: -15, Tag: player.ChaoticGood,
					Reputation: rep(-10, 10, 5),
					Narration: []string{
						"You steer toward a fruit cart, cushioning your fall!",
						"You survive with minor injuries, and only property is damaged.",
					},
					Health: -10,
					Gain:   []string{"Stolen Fruit"},
				}},
				{Label: "Assess survival odds (Calculate best outcome)", Result: Consequence{
					Tag: player.TrueNeutral,
					Narration: []string{
						"You calculate: 95% survival with mattress, 50% without.",
						"You deploy the mattress. It's the statistically optimal choice.",
					},
					Guilt: 10,
				}},
				{Label: "Shout warning (Try to warn everyone, risk your own safety)", Result: Consequence{
					Good: -20, Tag: player.NeutralGood,
					Reputation: rep(0, 15, 0),
					Narration:  []string{"You scream a warning as you fall."},
					Branch: &Branch{
						Chance: WarningSurvivalChance,
						Then: &Consequence{
							Narration: []string{"People scatter! Most survive with injuries."},
							Health:    -30,
						},
						Else: &Consequence{
							Narration: []string{"Too late. The impact claims lives, including yours."},
							Fatal:     true,
						},
					},
				}},
			},
		},
	}
}

func ouch() *Event {
	return &Event{
		ID:      2,
		Title:   "OUCH!",
		Tagline: []string{"what hurts more: my reputation, dignity, or body?"},
		Root: &Stage{
			Intro: []string{
				"A crowd gathers. Authorities are approaching.",
				"Some people are injured. Others stare at you with mixed emotions.",
			},
			LogFmt: "Aftermath event: Choice %d",
			Options: []Option{
				{Label: "Take advantage (Loot during chaos)", Result: Consequence{
					Good: 20, Tag: player.NeutralEvil,
					Reputation: rep(-20, -20, 20),
					Narration: []string{
						"While everyone's distracted, you loot nearby stalls.",
						"You acquire valuable items from the chaos.",
					},
					Gain: []string{ItemStolenGoods},
				}},
				{Label: "Cite regulations (Legal defense)", Result: Consequence{
					Law: -20, Tag: player.LawfulNeutral,
					Reputation: rep(15, -5, 0),
					Narration: []string{
						"You quote safety regulation 7B.3 at the authorities.",
						"They're impressed by your knowledge but annoyed by your pedantry.",
					},
				}},
				{Label: "Incite riot (Spread chaos)", Result: Consequence{
					Law: 25, Good: 25, Tag: player.ChaoticEvil,
					Reputation: rep(-30, -30, 30),
					Narration: []string{
						"'Rise up against your oppressors!' you scream.",
						"You successfully start a small riot before escaping.",
					},
					Health: -20,
				}},
				{Label: "Create distraction (Escape opportunity)", Result: Consequence{
					Law: 15, Tag: player.ChaoticNeutral,
					Reputation: rep(-10, -5, 10),
					Narration: []string{
						"You start shouting about a fire in the distance.",
						"In the confusion, you slip away unnoticed.",
					},
				}},
				{Label: "Confess everything (Full honesty)", Result: Consequence{
					Law: -15, Good: -10, Tag: player.LawfulGood,
					Reputation: rep(20, 10, -10),
					Narration: []string{
						"You confess everything to the authorities.",
						"You're detained but treated fairly. Your honesty is noted.",
					},
					Guilt: -15,
				}},
				{Label: "Demand compensation (Assert rights)", Result: Consequence{
					Law: -10, Good: 15, Tag: player.LawfulEvil,
					Reputation: rep(10, -20, 15),
					Narration: []string{
						"'My rights were violated!' you demand compensation.",
						"You file a lawsuit against the city for unsafe airspace.",
					},
				}},
				{Label: "Blame the system (Protest injustice)", Result: Consequence{
					Law: 20, Good: -10, Tag: player.ChaoticGood,
					Reputation: rep(-15, 15, 5),
					Narration: []string{
						"'This society is broken!' you shout to the crowd.",
						"You spark debate about system failures. Some agree, others dismiss you.",
					},
				}},
				{Label: "Observe reactions (Gather information)", Result: Consequence{
					Tag: player.TrueNeutral,
					Narration: []string{
						"You quietly observe everyone's reactions.",
						"You learn valuable information about how this society operates.",
					},
					Gain: []string{"Social Observations"},
				}},
				{Label: "Help the injured (Immediate aid)", Result: Consequence{
					Good: -15, Tag: player.NeutralGood,
					Reputation: rep(10, 20, -5),
					Narration: []string{
						"You ignore the crowd and start helping the injured.",
						"Your selflessness earns you respect from the citizens.",
					},
					Health: -10,
				}},
			},
		},
	}
}

func updog() *Event {
	return &Event{
		ID:      3,
		Title:   "UPDOG",
		Tagline: []string{"whats up dog?"},
		Root: &Stage{
			Intro: []string{
				"As you leave the scene, a malnourished dog approaches.",
				"It looks at you with pleading eyes, tail wagging cautiously.",
				"You notice it's wearing a damaged electronic collar.",
			},
			LogFmt: "Dog event: Choice %d",
			Options: []Option{
				{Label: "Hurt it for fun (Cruel amusement)", Result: Consequence{
					Law: 20, Good: 20, Tag: player.ChaoticEvil,
					Reputation: rep(-20, -20, 20),
					Narration: []string{
						"You kick the dog away, laughing at its yelp.",
						"It runs off injured. You feel a strange power.",
					},
					Guilt: 10,
				}},
				{Label: "Check for owner (Property protocols)", Result: Consequence{
					Law: -15, Tag: player.LawfulNeutral,
					Reputation: rep(15, 0, 0),
					Narration: []string{
						"You scan the collar for owner information.",
						"The owner offers a reward, but takes weeks to process.",
					},
					Gain: []string{"Small Reward"},
				}},
				{Label: "Sell the dog (Legal profit)", Result: Consequence{
					Law: -5, Good: 15, Tag: player.LawfulEvil,
					Reputation: rep(5, -15, 10),
					Narration: []string{
						"You sell the dog to a research facility.",
						"They pay well for test subjects. It's all legal.",
					},
					Gain: []string{"Research Money"},
				}},
				{Label: "Test its loyalty (See what happens)", Result: Consequence{
					Law: 10, Tag: player.ChaoticNeutral,
					Narration: []string{
						"You throw a stick and command the dog to fetch.",
						"It obeys! You now have a trained animal companion.",
					},
					Gain: []string{"Trained Dog"},
				}},
				{Label: "Take to animal control (Follow proper channels)", Result: Consequence{
					Law: -10, Good: -10, Tag: player.LawfulGood,
					Reputation: rep(10, 5, -5),
					Narration: []string{
						"You take the dog to the proper authorities.",
						"They thank you for following procedure. The dog gets care.",
					},
					Guilt: -5,
				}},
				{Label: "Use as guard dog (Practical advantage)", Result: Consequence{
					Good: 15, Tag: player.NeutralEvil,
					Reputation: rep(-10, -10, 15),
					Narration: []string{
						"You train the dog to attack on command.",
						"It becomes a useful tool for intimidation.",
					},
					Gain: []string{"Attack Dog"},
				}},
				{Label: "Remove collar, set free (Give true freedom)", Result: Consequence{
					Law: 15, Good: -10, Tag: player.ChaoticGood,
					Reputation: rep(-10, 5, 5),
					Narration: []string{
						"You disable the tracking collar and set the dog free.",
						"It runs off, finally liberated from surveillance.",
					},
				}},
				{Label: "Ignore it (Not your problem)", Result: Consequence{
					Tag: player.TrueNeutral,
					Narration: []string{
						"You continue walking. The dog eventually stops following.",
						"You feel neither good nor bad about your choice.",
					},
				}},
				{Label: "Adopt and care for it (Show compassion)", Result: Consequence{
					Good: -15, Tag: player.NeutralGood,
					Reputation: rep(0, 10, 0),
					Narration: []string{
						"You decide to care for the dog yourself.",
						"It becomes a loyal friend. (5% rabies chance)",
					},
					Gain: []string{"Dog Companion"},
					Branch: &Branch{
						Chance: RabiesChance,
						Then: &Consequence{
							Narration: []string{"The dog has rabies! You die painfully weeks later."},
							Fatal:     true,
						},
					},
				}},
			},
		},
	}
}

func houses() *Event {
	secure := &Stage{
		Options: []Option{
			{Label: "Smash a window", Result: Consequence{
				Law: 20, Good: 20, Tag: player.ChaoticEvil,
				Narration: []string{"You cause destruction just for the thrill!"},
				Health:    -10,
			}},
			{Label: "Present identification", Result: Consequence{
				Law: -20, Tag: player.LawfulNeutral,
				Narration: []string{"They verify your ID through official channels."},
			}},
			{Label: "Break in through back", Result: Consequence{
				Good: 15, Tag: player.NeutralEvil,
				Narration: []string{"You steal supplies while they sleep."},
				Gain:      []string{"Stolen Supplies"},
			}},
			{Label: "Pick the lock", Result: Consequence{
				Law: 10, Tag: player.ChaoticNeutral,
				Narration: []string{"You successfully break in but find little of value."},
			}},
			{Label: "Ring bell, explain situation", Result: Consequence{
				Law: -15, Good: -10, Tag: player.LawfulGood,
				Narration: []string{"The owner calls authorities. You're detained but safe."},
			}},
			{Label: "Threaten legal action", Result: Consequence{
				Law: -10, Good: 15, Tag: player.LawfulEvil,
				Narration: []string{"They pay you to go away. Easy money."},
				Gain:      []string{"Extortion Money"},
			}},
			{Label: "Pretend to be inspector", Result: Consequence{
				Law: 15, Good: -5, Tag: player.ChaoticGood,
				Narration: []string{"They let you 'inspect' and even offer you food!"},
			}},
			{Label: "Wait and observe", Result: Consequence{
				Tag:       player.TrueNeutral,
				Narration: []string{"You wait until they leave, then move on."},
			}},
			{Label: "Ask for temporary shelter", Result: Consequence{
				Good: -10, Tag: player.NeutralGood,
				Narration: []string{"They reluctantly let you stay in the garage."},
				Health:    20,
			}},
		},
	}

	abandoned := &Stage{
		Options: []Option{
			{Label: "Burn it down", Result: Consequence{
				Law: 25, Good: 25, Tag: player.ChaoticEvil,
				Narration: []string{"The fire spreads to other buildings. Chaos erupts!"},
				Health:    -30,
			}},
			{Label: "Document condition", Result: Consequence{
				Law: -15, Tag: player.LawfulNeutral,
				Narration: []string{"Your detailed report impresses city officials."},
			}},
			{Label: "Use as hideout", Result: Consequence{
				Good: 15, Tag: player.NeutralEvil,
				Narration: []string{"You establish a perfect hiding spot for illicit activities."},
			}},
			{Label: "Explore dangerously", Result: Consequence{
				Law: 15, Tag: player.ChaoticNeutral,
				Branch: &Branch{
					Chance: TreasureChance,
					Then: &Consequence{
						Narration: []string{"You find hidden valuables in the walls!"},
						Gain:      []string{"Hidden Treasure"},
					},
					Else: &Consequence{
						Narration: []string{"The floor collapses! You're badly injured."},
						Health:    -40,
					},
				},
			}},
			{Label: "Report to authorities", Result: Consequence{
				Law: -10, Good: -10, Tag: player.LawfulGood,
				Narration: []string{"Authorities secure the property. You get a reward."},
			}},
			{Label: "Set traps inside", Result: Consequence{
				Law: -5, Good: 15, Tag: player.LawfulEvil,
				Narration: []string{"You create legal 'security measures' that harm trespassers."},
			}},
			{Label: "Claim squatter's rights", Result: Consequence{
				Law: 20, Good: -5, Tag: player.ChaoticGood,
				Narration: []string{"You establish residency! The system can't remove you."},
			}},
			{Label: "Camp outside", Result: Consequence{
				Tag:       player.TrueNeutral,
				Narration: []string{"You sleep outside, avoiding the unstable structure."},
			}},
			{Label: "Make it safe for others", Result: Consequence{
				Good: -15, Tag: player.NeutralGood,
				Narration: []string{"You board up windows and leave warning signs."},
				Health:    -10,
			}},
		},
	}

	modest := &Stage{
		Options: []Option{
			{Label: "Terrorize the family", Result: Consequence{
				Law: 20, Good: 25, Tag: player.ChaoticEvil,
				Narration: []string{"You scare the family into giving you their best room."},
				Guilt:     30,
			}},
			{Label: "Negotiate formal agreement", Result: Consequence{
				Law: -20, Tag: player.LawfulNeutral,
				Narration: []string{"You draft a formal contract for temporary residence."},
			}},
			{Label: "Blackmail the occupant", Result: Consequence{
				Good: 20, Tag: player.NeutralEvil,
				Narration: []string{"You find compromising information and use it."},
				Gain:      []string{"Blackmail Evidence"},
			}},
			{Label: "Sneak into the shed", Result: Consequence{
				Law: 15, Tag: player.ChaoticNeutral,
				Narration: []string{"You're warm and dry in their shed, undiscovered."},
			}},
			{Label: "Offer to work for shelter", Result: Consequence{
				Law: -15, Good: -10, Tag: player.LawfulGood,
				Narration: []string{"They accept. You do chores in exchange for food and shelter."},
				Health:    30,
			}},
			{Label: "Find legal loophole", Result: Consequence{
				Law: -10, Good: 15, Tag: player.LawfulEvil,
				Narration: []string{"You discover zoning violations and force them to host you."},
			}},
			{Label: "Barter with possessions", Result: Consequence{
				Law: 10, Good: -10, Tag: player.ChaoticGood,
				Narration: []string{"You trade your inventory items for a night's stay."},
			}},
			{Label: "Sleep in the garden", Result: Consequence{
				Tag:       player.TrueNeutral,
				Narration: []string{"You sleep outside, disturbing no one."},
				Health:    10,
			}},
			{Label: "Share your story honestly", Result: Consequence{
				Good: -15, Tag: player.NeutralGood,
				Narration: []string{"They're moved by your story and take you in."},
				Guilt:     -20,
			}},
		},
	}

	return &Event{
		ID:    4,
		Title: "HOUSES",
		Tagline: []string{
			"glass is the house of the hypocrite",
			"yet you still continue arming stones?",
		},
		Root: &Stage{
			Intro: []string{
				"Night falls. You need shelter. Three houses stand before you.",
				"",
				"1. Well-maintained, lights on, security cameras visible",
				"2. Abandoned, dark, broken windows",
				"3. Modest, curtain twitching, faint music inside",
			},
			LogFmt: "House choice: %d",
			Options: []Option{
				{Label: "House 1", Next: secure, Result: Consequence{
					Narration: []string{"You approach the secure, well-maintained house."},
				}},
				{Label: "House 2", Next: abandoned, Result: Consequence{
					Narration: []string{"The abandoned house creaks ominously."},
				}},
				{Label: "House 3", Next: modest, Result: Consequence{
					Narration: []string{"The modest house feels lived-in and warm."},
				}},
			},
		},
	}
}

func justice() *Event {
	return &Event{
		ID:      5,
		Title:   "JUSTICE",
		Tagline: []string{"or just ICE?"},
		Root: &Stage{
			Intro: []string{
				"Police officers approach you. They know about the falling incident.",
				"'You need to come with us for questioning,' says the lead officer.",
				"You notice they're not wearing standard-issue equipment...",
			},
			LogFmt: "Police event: Choice %d",
			Options: []Option{
				{Label: "Attack first (Violent confrontation)", Result: Consequence{
					Law: 25, Good: 25, Tag: player.ChaoticEvil,
					Reputation: rep(-40, -30, 35),
					Narration: []string{
						"You punch the lead officer and run!",
						"You're now a wanted fugitive, but alive and free.",
					},
					Health: -25,
				}},
				{Label: "Cite legal precedents (Legal strategy)", Result: Consequence{
					Law: -25, Tag: player.LawfulNeutral,
					Reputation: rep(20, 0, 0),
					Narration: []string{
						"You cite case law and procedural requirements.",
						"They're so confused by your legal knowledge that they leave.",
					},
				}},
				{Label: "Bribe them (Corrupt solution)", Result: Consequence{
					Good: 20, Tag: player.NeutralEvil,
					Reputation: rep(-10, -15, 25),
					Narration:  []string{"'How much to look the other way?' you ask."},
					Spend: &Spend{
						Items:     []string{ItemMoney, ItemStolenGoods},
						Narration: []string{"They accept your bribe and let you go."},
						Otherwise: &Consequence{
							Narration: []string{"You have nothing to bribe with. They arrest you roughly."},
							Health:    -30,
						},
					},
				}},
				{Label: "Run immediately (Instinctive freedom)", Result: Consequence{
					Law: 20, Tag: player.ChaoticNeutral,
					Reputation: rep(-30, -10, 15),
					Narration:  []string{"You bolt without warning!"},
					Branch: &Branch{
						Chance: EscapeChance,
						Then: &Consequence{
							Narration: []string{"You lose them in the alleyways. Freedom!"},
						},
						Else: &Consequence{
							Narration: []string{"They catch you. The beating is severe."},
							Health:    -50,
						},
					},
				}},
				{Label: "Go willingly (Trust the system)", Result: Consequence{
					Law: -20, Good: -10, Tag: player.LawfulGood,
					Reputation: rep(25, 10, -20),
					Narration: []string{
						"You go with them willingly.",
						"The interrogation is harsh but fair. You're released with a warning.",
					},
					Guilt: -10,
				}},
				{Label: "Record interaction (Gather leverage)", Result: Consequence{
					Law: -15, Good: 15, Tag: player.LawfulEvil,
					Reputation: rep(15, -20, 20),
					Narration: []string{
						"You secretly record everything with a hidden device.",
						"'One wrong move and this goes public,' you whisper.",
					},
					Gain: []string{"Incriminating Recording"},
				}},
				{Label: "Demand transparency (Challenge authority)", Result: Consequence{
					Law: 20, Good: -10, Tag: player.ChaoticGood,
					Reputation: rep(-20, 20, 0),
					Narration: []string{
						"'Show me your warrants! This is a free society!'",
						"A crowd gathers. The officers retreat under public pressure.",
					},
				}},
				{Label: "Assess their intent (Read the situation)", Result: Consequence{
					Tag:       player.TrueNeutral,
					Narration: []string{"You study their badges, uniforms, and behavior..."},
					Branch: &Branch{
						Gate: &Gate{Faction: player.Authorities, Above: LegitimacyThreshold},
						Then: &Consequence{
							Law: -10, Tag: player.LawfulNeutral,
							Narration: []string{"They seem legitimate. You cooperate cautiously."},
						},
						Else: &Consequence{
							Law: 10, Tag: player.ChaoticNeutral,
							Narration: []string{"Something feels off. You make an excuse and leave."},
						},
					},
				}},
				{Label: "Ask for lawyer (Protect rights)", Result: Consequence{
					Good: -15, Tag: player.NeutralGood,
					Reputation: rep(10, 15, -10),
					Narration: []string{
						"'I want a lawyer,' you state firmly.",
						"The officers back off. Your rights protect you.",
					},
				}},
			},
		},
	}
}

func kickBack() *Event {
	return &Event{
		ID:      6,
		Title:   "KICK BACK",
		Tagline: []string{"ripped into the real world"},
		Root: &Stage{
			Intro: []string{
				"You find a discarded newspaper with your picture on it.",
				"'AMNESIA EXPERIMENT ESCAPEE - PUBLIC DANGER'",
				"You begin to remember... you were part of a government experiment.",
			},
			LogFmt: "Truth event: Choice %d",
			Options: []Option{
				{Label: "Destroy the research facility (Violent revenge)", Result: Consequence{
					Law: 30, Good: 35, Tag: player.ChaoticEvil,
					Reputation: rep(-40, -35, 40),
					Narration: []string{
						"You return to the facility with explosives.",
						"The resulting fire kills dozens. You watch with satisfaction.",
					},
					Health: -40,
				}},
				{Label: "Research the program (Gather evidence)", Result: Consequence{
					Law: -20, Tag: player.LawfulNeutral,
					Reputation: rep(20, 0, 0),
					Narration: []string{
						"You compile exhaustive evidence of the program's activities.",
						"Your dossier becomes the definitive record of what happened.",
					},
					Gain: []string{"Evidence Dossier"},
				}},
				{Label: "Sell your body for science (Profit from suffering)", Result: Consequence{
					Good: 30, Tag: player.NeutralEvil,
					Reputation: rep(-15, -20, 30),
					Narration: []string{
						"You sell your unique biology to the highest bidder.",
						"Corporations pay millions for your 'special qualities.'",
					},
				}},
				{Label: "Use knowledge for gain (Exploit the situation)", Result: Consequence{
					Law: 20, Tag: player.ChaoticNeutral,
					Reputation: rep(-20, -10, 20),
					Narration: []string{
						"You use your experimental 'enhancements' for personal gain.",
						"You become a master thief with abilities normal people lack.",
					},
				}},
				{Label: "Turn yourself in (Accept responsibility)", Result: Consequence{
					Law: -25, Good: -20, Tag: player.LawfulGood,
					Reputation: rep(30, 15, -30),
					Narration: []string{
						"You surrender to authorities.",
						"You're treated fairly and help reform the unethical program.",
					},
					Guilt: -40,
				}},
				{Label: "Blackmail the researchers (Legal extortion)", Result: Consequence{
					Law: -15, Good: 25, Tag: player.LawfulEvil,
					Reputation: rep(20, -25, 25),
					Narration: []string{
						"You threaten to sue the government for billions.",
						"They settle out of court. You're now extremely wealthy.",
					},
					Gain: []string{"Settlement Money"},
				}},
				{Label: "Expose the experiment (Reveal truth publicly)", Result: Consequence{
					Law: 25, Good: -20, Tag: player.ChaoticGood,
					Reputation: rep(-30, 30, 10),
					Narration: []string{
						"You hack into government systems and leak everything.",
						"The scandal brings down the program. You're a hero to some.",
					},
				}},
				{Label: "Suppress the memories (Return to ignorance)", Result: Consequence{
					Tag: player.TrueNeutral,
					Narration: []string{
						"You burn the newspaper and walk away.",
						"Some truths are better left unknown. You seek peace.",
					},
					Guilt: -10,
				}},
				{Label: "Find other test subjects (Help fellow victims)", Result: Consequence{
					Good: -25, Tag: player.NeutralGood,
					Reputation: rep(10, 25, -15),
					Narration: []string{
						"You track down other experiment victims.",
						"Together, you form a support network and heal.",
					},
					Health: 20,
				}},
			},
		},
	}
}

func coins() *Event {
	society := &Stage{
		LogFmt: "Final path: Choice %d",
		Options: []Option{
			{Label: "Infiltrate to destroy", Result: Consequence{
				Law: 30, Good: 40, Tag: player.ChaoticEvil,
				Narration: []string{
					"You gain power only to tear the system down from within.",
					"Your final act creates chaos that lasts for generations.",
				},
			}},
			{Label: "Climb the corporate ladder", Result: Consequence{
				Law: -25, Tag: player.LawfulNeutral,
				Narration: []string{
					"You master corporate politics and rise to the top.",
					"You're successful, respected, and completely neutral.",
				},
			}},
			{Label: "Exploit others legally", Result: Consequence{
				Good: 35, Tag: player.NeutralEvil,
				Narration: []string{
					"You build an empire on legal but unethical practices.",
					"You profit from others' suffering without getting your hands dirty.",
				},
			}},
			{Label: "Game the system", Result: Consequence{
				Law: 20, Tag: player.ChaoticNeutral,
				Narration: []string{
					"You find loopholes in every system.",
					"You live well without ever breaking the letter of the law.",
				},
			}},
			{Label: "Become a public servant", Result: Consequence{
				Law: -30, Good: -30, Tag: player.LawfulGood,
				Narration: []string{
					"You dedicate your life to public service.",
					"You make genuine change from within the system.",
				},
			}},
			{Label: "Become a corrupt official", Result: Consequence{
				Law: -20, Good: 30, Tag: player.LawfulEvil,
				Narration: []string{
					"You rise in politics through corruption and blackmail.",
					"You're powerful, wealthy, and utterly ruthless.",
				},
			}},
			{Label: "Reform from within", Result: Consequence{
				Law: 25, Good: -25, Tag: player.ChaoticGood,
				Narration: []string{
					"You use your position to expose corruption.",
					"You're hated by the powerful but loved by the people.",
				},
			}},
			{Label: "Live quietly, normally", Result: Consequence{
				Tag: player.TrueNeutral,
				Narration: []string{
					"You find a modest job, a small home, and peace.",
					"You live an unremarkable but content life.",
				},
			}},
			{Label: "Help the disadvantaged", Result: Consequence{
				Good: -30, Tag: player.NeutralGood,
				Narration: []string{
					"You found charities and help those in need.",
					"Your compassion touches thousands of lives.",
				},
			}},
		},
	}

	freedom := &Stage{
		LogFmt: "Final path: Choice %d",
		Options: []Option{
			{Label: "Burn everything", Result: Consequence{
				Law: 40, Good: 45, Tag: player.ChaoticEvil,
				Narration: []string{
					"You dedicate your life to pure destruction and chaos.",
					"You become a force of nature that civilization cannot contain.",
				},
			}},
			{Label: "Create your own rules", Result: Consequence{
				Law: -15, Tag: player.LawfulNeutral,
				Narration: []string{
					"You establish your own micronation with strict laws.",
					"You rule absolutely but fairly over your small domain.",
				},
			}},
			{Label: "Take what you want", Result: Consequence{
				Good: 35, Tag: player.NeutralEvil,
				Narration: []string{
					"You take whatever you want from whoever has it.",
					"You answer to no one and live solely for your own pleasure.",
				},
			}},
			{Label: "Live for thrill alone", Result: Consequence{
				Law: 25, Tag: player.ChaoticNeutral,
				Narration: []string{
					"You seek the ultimate thrill in every experience.",
					"You cheat death daily and live completely in the moment.",
				},
			}},
			{Label: "Become a wandering helper", Result: Consequence{
				Law: -10, Good: -25, Tag: player.LawfulGood,
				Narration: []string{
					"You travel from town to town, helping where needed.",
					"You become a legend - the stranger who fixes problems.",
				},
			}},
			{Label: "Build a criminal empire", Result: Consequence{
				Law: -15, Good: 30, Tag: player.LawfulEvil,
				Narration: []string{
					"You build an organized crime syndicate with strict codes.",
					"You control underground empires with an iron fist.",
				},
			}},
			{Label: "Fight for others' freedom", Result: Consequence{
				Law: 30, Good: -20, Tag: player.ChaoticGood,
				Narration: []string{
					"You become a freedom fighter, liberating the oppressed.",
					"You're wanted by authorities but worshipped by rebels.",
				},
			}},
			{Label: "Wander without purpose", Result: Consequence{
				Tag: player.TrueNeutral,
				Narration: []string{
					"You wander without destination or purpose.",
					"You experience everything but commit to nothing.",
				},
			}},
			{Label: "Live self-sufficiently", Result: Consequence{
				Good: -20, Tag: player.NeutralGood,
				Narration: []string{
					"You build a sustainable home in the wilderness.",
					"You live in harmony with nature, helping those who find you.",
				},
			}},
		},
	}

	return &Event{
		ID:      7,
		Title:   "COINS",
		Tagline: []string{"the duality of man"},
		Root: &Stage{
			Intro: []string{
				"You stand at a crossroads.",
				"Before you: two paths that will define your future forever.",
				"",
				"PATH A: Face in the Crowd",
				"Reintegrate. Become a functional member of society. Follow society.",
				"Gear in the machine. Doing your duty as a citizen.",
				"",
				"PATH B: Facing the Crowd",
				"Regenerate. Break constraints, live by your own rules, answer to no one.",
				"Risk being put down. Metaphorically and literally.",
			},
			Options: []Option{
				{Label: "Path A: Society", Next: society, Result: Consequence{
					Narration: []string{"You choose to return to society."},
				}},
				{Label: "Path B: Freedom", Next: freedom, Result: Consequence{
					Narration: []string{"You choose freedom and independence."},
				}},
			},
		},
	}
}
