package plan

import (
	"github.com/corvess/albumforge/internal/fx"
	"github.com/corvess/albumforge/internal/model"
)

// ChronoArk builds the built-in album plan: an unofficial soundtrack
// generated from the Unity asset files of the rogue-like deckbuilder
// Chrono Ark.
//
// Where possible, track names follow the official releases at
// <https://selector.bandcamp.com/album/chrono-ark-ost> and
// <https://soundcloud.com/cosmogrph/sets/chrono-ark-work>.
//
// Fade resolution probes asset files through the chain; check chain.Err
// after calling.
func ChronoArk(c *fx.Chain) *model.Album {
	return &model.Album{
		Title: "Chrono Ark Unofficial Soundtrack",
		Year:  "2024",
		Tracks: []model.Track{
			{
				Name:  "Chrono Ark Intro Theme",
				Parts: []model.Source{c.Source("choronoArk_intro.wav")},
			},

			{
				Name:  "Title Screen Theme",
				Parts: []model.Source{c.Source("Main.wav")},
			},

			{
				Name:   "Ark",
				Artist: "Cosmograph",
				Parts: []model.Source{
					c.Source("bangjoo_intro.wav"),
					c.FadeOut(c.Source("bangjoo_loop.wav"), 40, 6.5),
				},
			},

			{
				Name: "Misty Garden 1 Field Theme",
				Parts: []model.Source{
					c.Source("CA_Field01_2.wav"),
					c.FadeOut(c.Source("CA_Field01_2.wav"), 56, 8),
				},
				Gap: 1,
			},

			{
				Name: "Misty Garden 1 Battle Theme",
				Parts: []model.Source{
					c.Source("CA_Battle01.wav"),
					c.FadeOut(c.Source("CA_Battle01.wav"), 60, 5),
				},
				Gap: 1,
			},

			{
				Name: "Misty Garden 1 Boss Theme",
				Parts: []model.Source{
					c.FadeOut(c.Source("CA_Boss01.wav"), 113, 10),
				},
				Gap: 1,
			},

			{
				Name: "Chrono Ark Normal Theme",
				Parts: []model.Source{
					c.Source("chronoArk_normal.wav"),
					c.FadeOut(c.Source("chronoArk_normal.wav"), 55, 5),
				},
				Gap: 1,
			},

			{
				Name: "Mysterious Forest (Misty Garden 2 Field Theme)",
				Parts: []model.Source{
					c.Source("01 Mysterious Forest (Field Front).wav"),
					c.FadeOut(c.Source("01 Mysterious Forest (Field Loop).wav"), 96, 6),
				},
				Gap: 1,
			},

			{
				Name: "Crush & Contort (Misty Garden 2 Battle Theme)",
				Parts: []model.Source{
					c.Source("02 Crush & Contort (Battle Front).wav"),
					c.FadeOut(c.Source("02 Crush & Contort (Battle Loop).wav"), 92, 6),
				},
				Gap: 1,
			},

			{
				Name:   "Hope for Existence (The Witch's Theme)",
				Artist: "Cosmograph",
				Parts: []model.Source{
					c.Source("04 Hope for Existence (Boss intro).wav"),
					c.FadeOutToEnd(c.Source("04 Hope for Existence (Boss Loop).wav"), -10),
				},
				Gap: 1,
			},

			{
				Name:   "Shiranui Battle Theme",
				Artist: "Hox2 (Studio EIM)",
				Parts: []model.Source{
					c.Source("Shiranui_Battle.wav"),
					c.FadeOut(c.Source("Shiranui_Battle.wav"), 76, 11),
				},
				Gap: 1,
			},

			{
				Name:   "Encounter Dorchi",
				Artist: "Cosmograph",
				Parts: []model.Source{
					c.Source("SirDorchi.wav"),
					c.FadeOut(c.Source("SirDorchi.wav"), 97, 4.8),
				},
				Gap: 1,
			},

			{
				Name:   "Place of Void (Bloody Park 1 Field Theme)",
				Artist: "Selector",
				Parts: []model.Source{
					c.FadeOut(c.Source("CA_Field02.wav"), 145, 5),
				},
				Gap: 1,
			},

			{
				Name:   "After Revive (Bloody Park 1 Battle Theme)",
				Artist: "Selector",
				Parts: []model.Source{
					c.FadeOut(c.Source("CA_Battle02.wav"), 149, 5),
				},
				Gap: 1,
			},

			{
				Name: "Final March of Broken Toys (Bloody Park Boss Theme)",
				Parts: []model.Source{
					c.FadeOut(c.Source("CA_Boss02.wav"), 110, 5),
				},
				Gap: 1,
			},

			{
				// The game writes "Showtime" in places; the bandcamp
				// release spells it "Show Time".
				Name:   "Show Time (The Joker's Theme)",
				Artist: "Selector",
				Parts: []model.Source{
					c.Source("06 Show Time (Boss Front).wav"),
					c.FadeOut(c.Source("06 Show Time (Boss Loop).wav"), -6, 5),
				},
				Gap: 1,
			},

			{
				Name: "The Phenomenon (Bloody Park 2 Field Theme)",
				Parts: []model.Source{
					c.Source("03 The Phenomenon (Field Front).wav"),
					c.FadeOutToEnd(c.Source("03 The Phenomenon (Field Loop).wav"), -5),
				},
				Gap: 1,
			},

			{
				Name:   "Obstructor (Bloody Park 2 Battle Theme)",
				Artist: "Selector",
				Parts: []model.Source{
					c.Source("04 Obstructor (Battle Front).wav"),
					c.FadeOutToEnd(c.Source("04 Obstructor (Battle Loop).wav"), -5),
				},
				Gap: 1,
			},

			{
				Name: "White Grave Field Theme",
				Parts: []model.Source{
					c.FadeOut(c.Source("CA_Field03.wav"), -6, 4),
				},
				Gap: 1,
			},

			{
				Name: "White Grave Battle Theme",
				Parts: []model.Source{
					c.FadeOutToEnd(c.Source("CA_Battle03.wav"), -5),
				},
				Gap: 1,
			},

			{
				Name: "Near the End (White Grave Boss Theme)",
				Parts: []model.Source{
					c.Source("CA_Boss03_Intro.wav"),
					c.FadeOut(c.Source("CA_Boss03_Loop.wav"), -6, 5.25),
				},
				Gap: 1,
			},

			{
				Name:   "Sanctuary",
				Artist: "Selector",
				Parts: []model.Source{
					c.Source("01 Sanctuary (Field Front).wav"),
					c.FadeOut(c.Source("01 Sanctuary (Field Loop).wav"), -6.5, 5),
				},
				Gap: 1,
			},

			{
				Name: "Anxiety",
				Parts: []model.Source{
					c.Source("02 Anxiety (Battle Front).wav"),
					c.FadeOut(c.Source("02 Anxiety (Battle Loop).wav"), -10.5, 7.25),
				},
				Gap: 1,
			},

			{
				Name:   "End Of Light",
				Artist: "Cosmograph",
				Parts: []model.Source{
					c.Source("03 End of Light (Boss intro).wav"),
					c.FadeOut(c.Source("02 End of Light (Boss Loop).wav"), -13, 10),
				},
				Gap: 1,
			},

			{
				Name: "Challenge (Early Access Azar Boss Theme)",
				Parts: []model.Source{
					c.FadeOut(c.Source("Challenge.wav"), -7, 5),
				},
				Gap: 1,
			},

			{
				Name:  "Glitchy Chrono Ark Intro Theme",
				Parts: []model.Source{c.Source("ChagedIntro.wav")},
				Gap:   1,
			},

			{
				Name:  "Chrono Ark Ex",
				Parts: []model.Source{c.Source("choronoArk_ex.wav")},
			},

			{
				Name: "Restart",
				Parts: []model.Source{
					c.Source("ReStart_Intro.wav"),
					c.Source("ReStart.wav"),
					c.FadeOut(c.Source("ReStart.wav"), -10, 8),
				},
			},

			{
				Name: "Crimson Wilds",
				Parts: []model.Source{
					c.FadeOutToEnd(c.Source("RW_field.wav"), -9),
				},
				Gap: 1,
			},

			{
				Name: "Crimson Wilds Battle Theme",
				Parts: []model.Source{
					c.FadeOut(c.Source("RW_battle.wav"), 110, 13.25),
				},
				Gap: 1,
			},

			{
				Name: "Crimson Wilds Boss Theme",
				Parts: []model.Source{
					c.Source("RW_boss_Intro.wav"),
					c.FadeOut(c.Source("RW_boss.wav"), -8, 7),
				},
				Gap: 1,
			},

			{
				Name: "Azar Boss Theme Phase 1",
				Parts: []model.Source{
					c.Source("Azar_Boss_Theme_Phase1_(Intro).wav"),
					c.Source("Azar_Boss_Theme_Phase1_(loop).wav"),
					c.FadeOutToEnd(c.Source("Azar_Boss_Theme_Phase1_(loop).wav"), -5),
				},
				Gap: 1,
			},

			{
				Name:       "Azar Boss Theme Phase 2 (feat. FiNE)",
				Artist:     "Lee Dong Hoon (Studio EIM)",
				LyricsFile: "azar-boss-theme-2-lyrics.txt",
				Parts: []model.Source{
					c.Volume(
						c.FadeOut(c.Source("Azar_Boss_Theme_Phase2_(Intro).wav"), -12, 9),
						"0.7",
					),
				},
				Gap: 1,
			},

			{
				Name:   "Program Master Boss Theme Phase 1",
				Artist: "Rindaman (Studio EIM)",
				Parts: []model.Source{
					c.Source("ProgramMaster_Boss_Theme_Phase1_(Intro).wav"),
					c.FadeOut(c.Source("ProgramMaster_Boss_Theme_Phase1_(Loop).wav"), -6, 5),
				},
				Gap: 1,
			},

			{
				Name:   "Program Master Boss Theme Phase 2",
				Artist: "Rindaman (Studio EIM)",
				Parts: []model.Source{
					c.Source("ProgramMaster_Boss_Theme_Phase2_(Intro).wav"),
					c.FadeOut(c.Source("ProgramMaster_Boss_Theme_Phase2_(Loop).wav"), -10, 8),
				},
				Gap: 1,
			},

			{
				Name: "Memory Lane",
				Parts: []model.Source{
					c.FadeOutToEnd(c.Source("Memory Lane.wav"), -8),
				},
				Gap: 1,
			},

			{
				Name: "Clock Tower Theme",
				Parts: []model.Source{
					c.Source("ClockTower.wav"),
					c.FadeOut(c.Source("ClockTower.wav"), -8, 6),
				},
				Gap: 1,
			},

			{
				Name: "Ark System",
				Parts: []model.Source{
					c.Source("ArkSystemBootUp.wav"),
					c.FadeIn(c.Source("ArkSystemAmbiLoop.wav"), 2),
					c.FadeOutToEnd(c.Source("ArkSystemAmbiLoop.wav"), -5),
				},
				Gap: 1,
			},

			{
				Name:  "Infinity",
				Parts: []model.Source{c.Source("InfinityLoop.wav")},
				Gap:   1,
			},

			{
				Name: "Opposition",
				Parts: []model.Source{
					c.Source("Opposition.wav"),
					c.FadeOut(c.Source("Opposition.wav"), -8, 5.5),
				},
				Gap: 1,
			},

			{
				Name: "Dystopia",
				Parts: []model.Source{
					c.Source("Dystopia_intro.wav"),
					c.FadeOut(c.Source("Dystopia_loop.wav"), -6, 5),
				},
				Gap: 1,
			},

			{
				Name: "Ark Sight",
				Parts: []model.Source{
					c.Source("ArkSight.wav"),
					c.FadeOut(c.Source("ArkSight.wav"), -15, 8),
				},
			},

			{
				Name: "Clone",
				Parts: []model.Source{
					c.Source("Clone.wav"),
					c.FadeOut(c.Source("Clone.wav"), -8, 6.5),
				},
				Gap: 1,
			},

			{
				Name:   "Broken World",
				Artist: "Cosmograph",
				Parts: []model.Source{
					c.Source("DeeperDeeper.wav"),
					c.FadeOutToEnd(c.Source("DeeperDeeper.wav"), -5),
				},
				Gap: 1,
			},

			{
				Name:   "Everything Meaning",
				Artist: "Rindaman (Studio EIM)",
				Parts:  []model.Source{c.Source("EverythingMeaning.wav")},
			},

			{
				Name: "It's Time to Choose",
				Parts: []model.Source{
					c.Source("It's Time to Choose loop.wav"),
					c.Source("It's Time to Choose climax.wav"),
				},
			},

			{
				Name: "Outbreak",
				Parts: []model.Source{
					c.Source("OutBreak.wav"),
					c.FadeOut(c.Source("OutBreak.wav"), -10, 6),
				},
				Gap: 1,
			},

			{
				Name: "Abyss",
				Parts: []model.Source{
					c.Source("Story_3_Abyss_loop.wav"),
					c.FadeOut(c.Source("Story_3_Abyss_loop.wav"), 10, 7),
				},
				Gap: 1,
			},

			{
				Name: "Story Background Music",
				Parts: []model.Source{
					c.Source("StoryBGM_2.wav"),
					// Zero-length fade: trims excess trailing silence.
					c.FadeOut(c.Source("StoryBGM_2.wav"), -3, 0),
				},
			},

			{
				Name: "Serious Story Background Music",
				Parts: []model.Source{
					c.Source("StoryBGM_serious.wav"),
					c.FadeOut(c.Source("StoryBGM_serious.wav"), -8, 6),
				},
				Gap: 1,
			},

			{
				Name:   "The Legendary Phoenix",
				Artist: "Cosmograph",
				Parts: []model.Source{
					c.Source("pheonix_theme.wav"),
					c.FadeOutToEnd(c.Source("pheonix_theme.wav"), -7),
				},
				Gap: 1,
			},

			{
				Name: "There's No Way",
				Parts: []model.Source{
					c.Source("Theres No Way loop_Intro.wav"),
					c.FadeOutToEnd(c.Source("Theres No Way loop.wav"), -5),
				},
				Gap: 1,
			},

			{
				Name: "Virtual Emotions",
				Parts: []model.Source{
					c.Source("VirtualEmotions.wav"),
					c.FadeOut(c.Source("VirtualEmotions.wav"), -10, 7.5),
				},
				Gap: 1,
			},

			{
				Name:   "Wrong Beginning",
				Artist: "Selector",
				Parts: []model.Source{
					c.Source("Wrong Beginning (Front).wav"),
					c.FadeOut(c.Source("Wrong Beginning (Loop).wav"), -10, 7.7),
				},
			},

			{
				Name:   "End Credits Background Music",
				Artist: "KuaNu (Studio EIM)",
				Parts:  []model.Source{c.Source("TrueEndCredit_BGM.wav")},
			},
		},
	}
}
