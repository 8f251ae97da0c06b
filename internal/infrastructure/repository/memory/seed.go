package memory

import (
	"time"

	"github.com/gridironstats/ncaafb-api/internal/domain/coach"
	"github.com/gridironstats/ncaafb-api/internal/domain/conference"
	"github.com/gridironstats/ncaafb-api/internal/domain/division"
	"github.com/gridironstats/ncaafb-api/internal/domain/player"
	"github.com/gridironstats/ncaafb-api/internal/domain/playerstats"
	"github.com/gridironstats/ncaafb-api/internal/domain/ranking"
	"github.com/gridironstats/ncaafb-api/internal/domain/season"
	"github.com/gridironstats/ncaafb-api/internal/domain/team"
	"github.com/gridironstats/ncaafb-api/internal/domain/venue"
)

const (
	ConferenceIDSEC    = "conf-sec"
	ConferenceIDBigTen = "conf-big-ten"

	TeamIDAlabama   = "team-alabama"
	TeamIDGeorgia   = "team-georgia"
	TeamIDOhioState = "team-ohio-state"
	TeamIDMichigan  = "team-michigan"

	SeasonID2024REG = "season-2024-reg"
	SeasonID2025REG = "season-2025-reg"
)

func SeedConferences() []conference.Conference {
	return []conference.Conference{
		{ID: ConferenceIDSEC, Name: "Southeastern Conference", Alias: "SEC"},
		{ID: ConferenceIDBigTen, Name: "Big Ten Conference", Alias: "B1G"},
	}
}

func SeedDivisions() []division.Division {
	return []division.Division{
		{ID: "div-sec-east", Name: "East", Alias: "EAST", ConferenceID: ConferenceIDSEC, ConferenceName: "Southeastern Conference"},
		{ID: "div-sec-west", Name: "West", Alias: "WEST", ConferenceID: ConferenceIDSEC, ConferenceName: "Southeastern Conference"},
	}
}

func SeedVenues() []venue.Venue {
	return []venue.Venue{
		{
			ID: "venue-bryant-denny", Name: "Bryant-Denny Stadium",
			City: "Tuscaloosa", State: "AL", Country: "USA", Zip: "35487",
			Capacity: 100077, Surface: "grass", RoofType: "outdoor",
			Latitude: 33.2083, Longitude: -87.5504,
		},
		{
			ID: "venue-ohio-stadium", Name: "Ohio Stadium",
			City: "Columbus", State: "OH", Country: "USA", Zip: "43210",
			Capacity: 102780, Surface: "turf", RoofType: "outdoor",
			Latitude: 40.0017, Longitude: -83.0197,
		},
		{
			ID: "venue-sanford", Name: "Sanford Stadium",
			City: "Athens", State: "GA", Country: "USA", Zip: "30602",
			Capacity: 92746, Surface: "grass", RoofType: "outdoor",
			Latitude: 33.9497, Longitude: -83.3733,
		},
		{
			ID: "venue-michigan-stadium", Name: "Michigan Stadium",
			City: "Ann Arbor", State: "MI", Country: "USA", Zip: "48104",
			Capacity: 107601, Surface: "turf", RoofType: "outdoor",
			Latitude: 42.2658, Longitude: -83.7487,
		},
	}
}

func SeedSeasons() []season.Season {
	start2024 := time.Date(2024, 8, 24, 0, 0, 0, 0, time.UTC)
	end2024 := time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)
	start2025 := time.Date(2025, 8, 23, 0, 0, 0, 0, time.UTC)
	end2025 := time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)

	return []season.Season{
		{ID: SeasonID2024REG, Year: 2024, TypeCode: season.TypeRegular, Status: "closed", StartDate: &start2024, EndDate: &end2024},
		{ID: SeasonID2025REG, Year: 2025, TypeCode: season.TypeRegular, Status: "inprogress", StartDate: &start2025, EndDate: &end2025},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID: TeamIDAlabama, Market: "Alabama", Name: "Crimson Tide", Alias: "ALA",
			Founded: 1892, Mascot: "Big Al", FightSong: "Yea Alabama", ChampionshipsWon: 18,
			ConferenceID: ConferenceIDSEC, ConferenceName: "Southeastern Conference",
			DivisionID: "div-sec-west", DivisionName: "West",
			VenueID: "venue-bryant-denny", VenueName: "Bryant-Denny Stadium",
		},
		{
			ID: TeamIDGeorgia, Market: "Georgia", Name: "Bulldogs", Alias: "UGA",
			Founded: 1892, Mascot: "Uga", FightSong: "Glory Glory", ChampionshipsWon: 4,
			ConferenceID: ConferenceIDSEC, ConferenceName: "Southeastern Conference",
			DivisionID: "div-sec-east", DivisionName: "East",
			VenueID: "venue-sanford", VenueName: "Sanford Stadium",
		},
		{
			ID: TeamIDOhioState, Market: "Ohio State", Name: "Buckeyes", Alias: "OSU",
			Founded: 1890, Mascot: "Brutus Buckeye", FightSong: "Across the Field", ChampionshipsWon: 9,
			ConferenceID: ConferenceIDBigTen, ConferenceName: "Big Ten Conference",
			VenueID: "venue-ohio-stadium", VenueName: "Ohio Stadium",
		},
		{
			ID: TeamIDMichigan, Market: "Michigan", Name: "Wolverines", Alias: "MICH",
			Founded: 1879, Mascot: "Biff", FightSong: "The Victors", ChampionshipsWon: 12,
			ConferenceID: ConferenceIDBigTen, ConferenceName: "Big Ten Conference",
			VenueID: "venue-michigan-stadium", VenueName: "Michigan Stadium",
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID: "player-miller", FirstName: "Jordan", LastName: "Miller", AbbrName: "J.Miller",
			BirthPlace: "Birmingham, AL, USA", Position: "RB", Height: 71, Weight: 210,
			Status: "ACT", Eligibility: "JR", TeamID: TeamIDAlabama, TeamName: "Alabama Crimson Tide",
		},
		{
			ID: "player-hayes", FirstName: "Marcus", LastName: "Hayes", AbbrName: "M.Hayes",
			BirthPlace: "Atlanta, GA, USA", Position: "WR", Height: 74, Weight: 195,
			Status: "ACT", Eligibility: "SO", TeamID: TeamIDGeorgia, TeamName: "Georgia Bulldogs",
		},
		{
			ID: "player-carter", FirstName: "DeShawn", LastName: "Carter", AbbrName: "D.Carter",
			BirthPlace: "Cleveland, OH, USA", Position: "RB", Height: 70, Weight: 205,
			Status: "ACT", Eligibility: "SR", TeamID: TeamIDOhioState, TeamName: "Ohio State Buckeyes",
		},
		{
			ID: "player-brooks", FirstName: "Tyler", LastName: "Brooks", AbbrName: "T.Brooks",
			BirthPlace: "Detroit, MI, USA", Position: "WR", Height: 73, Weight: 188,
			Status: "SUS", Eligibility: "FR", TeamID: TeamIDMichigan, TeamName: "Michigan Wolverines",
		},
	}
}

func SeedCoaches() []coach.Coach {
	return []coach.Coach{
		{ID: "coach-debord", FullName: "Richard DeBord", Position: "Head Coach", TeamID: TeamIDAlabama, TeamName: "Alabama Crimson Tide"},
		{ID: "coach-wallace", FullName: "Samuel Wallace", Position: "Head Coach", TeamID: TeamIDGeorgia, TeamName: "Georgia Bulldogs"},
		{ID: "coach-knight", FullName: "Gary Knight", Position: "Offensive Coordinator", TeamID: TeamIDOhioState, TeamName: "Ohio State Buckeyes"},
	}
}

func SeedStatLines() []playerstats.SeasonLine {
	return []playerstats.SeasonLine{
		{
			StatID: 1, PlayerID: "player-miller", PlayerName: "Jordan Miller", Position: "RB",
			TeamID: TeamIDAlabama, TeamName: "Alabama Crimson Tide",
			SeasonID: SeasonID2025REG, SeasonYear: 2025, SeasonType: "REG",
			GamesPlayed: 12, GamesStarted: 12,
			RushingYards: 1548, RushingTouchdowns: 17, ReceivingYards: 220, ReceivingTouchdowns: 2, Fumbles: 3,
		},
		{
			StatID: 2, PlayerID: "player-carter", PlayerName: "DeShawn Carter", Position: "RB",
			TeamID: TeamIDOhioState, TeamName: "Ohio State Buckeyes",
			SeasonID: SeasonID2025REG, SeasonYear: 2025, SeasonType: "REG",
			GamesPlayed: 12, GamesStarted: 11,
			RushingYards: 1390, RushingTouchdowns: 14, ReceivingYards: 310, ReceivingTouchdowns: 3, Fumbles: 1,
		},
		{
			StatID: 3, PlayerID: "player-hayes", PlayerName: "Marcus Hayes", Position: "WR",
			TeamID: TeamIDGeorgia, TeamName: "Georgia Bulldogs",
			SeasonID: SeasonID2025REG, SeasonYear: 2025, SeasonType: "REG",
			GamesPlayed: 11, GamesStarted: 10,
			ReceivingYards: 1104, ReceivingTouchdowns: 11, KickReturnYards: 402,
		},
		{
			StatID: 4, PlayerID: "player-miller", PlayerName: "Jordan Miller", Position: "RB",
			TeamID: TeamIDAlabama, TeamName: "Alabama Crimson Tide",
			SeasonID: SeasonID2024REG, SeasonYear: 2024, SeasonType: "REG",
			GamesPlayed: 13, GamesStarted: 9,
			RushingYards: 905, RushingTouchdowns: 8, ReceivingYards: 150, ReceivingTouchdowns: 1, Fumbles: 2,
		},
	}
}

func SeedRankings() []ranking.Ranking {
	week14 := time.Date(2025, 12, 2, 14, 0, 0, 0, time.UTC)
	week13 := time.Date(2025, 11, 25, 14, 0, 0, 0, time.UTC)

	return []ranking.Ranking{
		{ID: 1, PollID: "AP25", PollName: "AP Top 25", SeasonID: SeasonID2025REG, SeasonYear: 2025, Week: 14, EffectiveTime: &week14, TeamID: TeamIDGeorgia, TeamName: "Bulldogs", TeamMarket: "Georgia", Rank: 1, PrevRank: 2, Points: 1544, FPVotes: 48, Wins: 12, Losses: 0},
		{ID: 2, PollID: "AP25", PollName: "AP Top 25", SeasonID: SeasonID2025REG, SeasonYear: 2025, Week: 14, EffectiveTime: &week14, TeamID: TeamIDOhioState, TeamName: "Buckeyes", TeamMarket: "Ohio State", Rank: 2, PrevRank: 1, Points: 1498, FPVotes: 14, Wins: 11, Losses: 1},
		{ID: 3, PollID: "AP25", PollName: "AP Top 25", SeasonID: SeasonID2025REG, SeasonYear: 2025, Week: 14, EffectiveTime: &week14, TeamID: TeamIDAlabama, TeamName: "Crimson Tide", TeamMarket: "Alabama", Rank: 3, PrevRank: 4, Points: 1402, Wins: 10, Losses: 2},
		{ID: 4, PollID: "AP25", PollName: "AP Top 25", SeasonID: SeasonID2025REG, SeasonYear: 2025, Week: 13, EffectiveTime: &week13, TeamID: TeamIDOhioState, TeamName: "Buckeyes", TeamMarket: "Ohio State", Rank: 1, PrevRank: 1, Points: 1540, FPVotes: 40, Wins: 11, Losses: 0},
	}
}
