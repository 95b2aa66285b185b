package refdata

import "github.com/stitts-dev/cricket-sim/internal/models"

func f(v float64) *float64 { return &v }

var builtinTeams = []models.Team{
	// International
	{ID: "ind", Name: "India", ShortName: "IND", Color: "#0055A6", Logo: "🇮🇳", Category: models.CategoryInternational, Strength: 95},
	{ID: "aus", Name: "Australia", ShortName: "AUS", Color: "#FFD700", Logo: "🇦🇺", Category: models.CategoryInternational, Strength: 92},
	{ID: "eng", Name: "England", ShortName: "ENG", Color: "#C8102E", Logo: "🏴󠁧󠁢󠁥󠁮󠁧󠁿", Category: models.CategoryInternational, Strength: 90},
	{ID: "sa", Name: "South Africa", ShortName: "RSA", Color: "#007749", Logo: "🇿🇦", Category: models.CategoryInternational, Strength: 88},
	{ID: "nz", Name: "New Zealand", ShortName: "NZ", Color: "#000000", Logo: "🇳🇿", Category: models.CategoryInternational, Strength: 87},
	{ID: "pak", Name: "Pakistan", ShortName: "PAK", Color: "#006400", Logo: "🇵🇰", Category: models.CategoryInternational, Strength: 85},
	{ID: "wi", Name: "West Indies", ShortName: "WI", Color: "#7B0041", Logo: "🌴", Category: models.CategoryInternational, Strength: 82},
	{ID: "sl", Name: "Sri Lanka", ShortName: "SL", Color: "#0055A6", Logo: "🇱🇰", Category: models.CategoryInternational, Strength: 80},
	{ID: "ban", Name: "Bangladesh", ShortName: "BAN", Color: "#006A4E", Logo: "🇧🇩", Category: models.CategoryInternational, Strength: 78},
	{ID: "afg", Name: "Afghanistan", ShortName: "AFG", Color: "#007A33", Logo: "🇦🇫", Category: models.CategoryInternational, Strength: 84},

	// Franchise
	{ID: "csk", Name: "Chennai Super Kings", ShortName: "CSK", Color: "#FFFF3C", Logo: "🦁", Category: models.CategoryFranchise, Strength: 94},
	{ID: "mi", Name: "Mumbai Indians", ShortName: "MI", Color: "#004BA0", Logo: "🌪️", Category: models.CategoryFranchise, Strength: 93},
	{ID: "rcb", Name: "Royal Challengers Bangalore", ShortName: "RCB", Color: "#EC1C24", Logo: "🐅", Category: models.CategoryFranchise, Strength: 89},
	{ID: "kkr", Name: "Kolkata Knight Riders", ShortName: "KKR", Color: "#3A225D", Logo: "🛡️", Category: models.CategoryFranchise, Strength: 91},
	{ID: "gt", Name: "Gujarat Titans", ShortName: "GT", Color: "#1B2133", Logo: "⚡", Category: models.CategoryFranchise, Strength: 92},
	{ID: "srh", Name: "Sunrisers Hyderabad", ShortName: "SRH", Color: "#F7A721", Logo: "🦅", Category: models.CategoryFranchise, Strength: 88},
	{ID: "rr", Name: "Rajasthan Royals", ShortName: "RR", Color: "#EA1A85", Logo: "👑", Category: models.CategoryFranchise, Strength: 90},
	{ID: "lsg", Name: "Lucknow Super Giants", ShortName: "LSG", Color: "#A0CEF8", Logo: "🦸", Category: models.CategoryFranchise, Strength: 89},
	{ID: "dc", Name: "Delhi Capitals", ShortName: "DC", Color: "#00008B", Logo: "🐯", Category: models.CategoryFranchise, Strength: 86},
	{ID: "pbks", Name: "Punjab Kings", ShortName: "PBKS", Color: "#ED1B24", Logo: "🦁", Category: models.CategoryFranchise, Strength: 85},
}

var builtinVenues = []models.Venue{
	{ID: "wankhede", Name: "Wankhede Stadium", City: "Mumbai", AvgFirstInningsScore: 185, PitchType: models.PitchBatting, Bias: models.BiasPace, ParScore: 190},
	{ID: "chepauk", Name: "M. A. Chidambaram Stadium", City: "Chennai", AvgFirstInningsScore: 162, PitchType: models.PitchBowling, Bias: models.BiasSpin, ParScore: 170},
	{ID: "chinnaswamy", Name: "M. Chinnaswamy Stadium", City: "Bangalore", AvgFirstInningsScore: 195, PitchType: models.PitchBatting, Bias: models.BiasPace, ParScore: 200},
	{ID: "eden", Name: "Eden Gardens", City: "Kolkata", AvgFirstInningsScore: 178, PitchType: models.PitchBalanced, Bias: models.BiasSpin, ParScore: 180},
	{ID: "mcg", Name: "Melbourne Cricket Ground", City: "Melbourne", AvgFirstInningsScore: 160, PitchType: models.PitchBalanced, Bias: models.BiasPace, ParScore: 165},
	{ID: "lords", Name: "Lord's", City: "London", AvgFirstInningsScore: 155, PitchType: models.PitchBowling, Bias: models.BiasPace, ParScore: 160},
	{ID: "dubai", Name: "Dubai International Stadium", City: "Dubai", AvgFirstInningsScore: 168, PitchType: models.PitchBalanced, Bias: models.BiasSpin, ParScore: 170},
	{ID: "wanderers", Name: "The Wanderers Stadium", City: "Johannesburg", AvgFirstInningsScore: 175, PitchType: models.PitchBatting, Bias: models.BiasPace, ParScore: 180},
}

var builtinPlayers = []models.Player{
	// India
	{ID: "p1", Name: "Virat Kohli", TeamID: "ind", Role: models.RoleBatsman, BattingAverage: 50.1, StrikeRate: 138.5, FantasyPointsAvg: 75},
	{ID: "p2", Name: "Rohit Sharma", TeamID: "ind", Role: models.RoleBatsman, BattingAverage: 32.5, StrikeRate: 140.2, FantasyPointsAvg: 68},
	{ID: "p3", Name: "Jasprit Bumrah", TeamID: "ind", Role: models.RoleBowler, BattingAverage: 5.0, StrikeRate: 80.0, BowlingAverage: f(22.1), Economy: f(6.5), FantasyPointsAvg: 82},
	{ID: "p4", Name: "Ravindra Jadeja", TeamID: "ind", Role: models.RoleAllRounder, BattingAverage: 28.5, StrikeRate: 128.5, BowlingAverage: f(28.5), Economy: f(7.2), FantasyPointsAvg: 70},

	// Australia
	{ID: "p5", Name: "Travis Head", TeamID: "aus", Role: models.RoleBatsman, BattingAverage: 40.5, StrikeRate: 155.0, FantasyPointsAvg: 78},
	{ID: "p6", Name: "Pat Cummins", TeamID: "aus", Role: models.RoleBowler, BattingAverage: 15.0, StrikeRate: 110.0, BowlingAverage: f(24.5), Economy: f(7.8), FantasyPointsAvg: 72},

	// CSK
	{ID: "p7", Name: "MS Dhoni", TeamID: "csk", Role: models.RoleWicketkeeper, BattingAverage: 39.5, StrikeRate: 135.5, FantasyPointsAvg: 55},
	{ID: "p8", Name: "Ruturaj Gaikwad", TeamID: "csk", Role: models.RoleBatsman, BattingAverage: 42.1, StrikeRate: 136.0, FantasyPointsAvg: 65},

	// RCB
	{ID: "p9", Name: "Faf du Plessis", TeamID: "rcb", Role: models.RoleBatsman, BattingAverage: 35.5, StrikeRate: 142.0, FantasyPointsAvg: 62},
	{ID: "p10", Name: "Glenn Maxwell", TeamID: "rcb", Role: models.RoleAllRounder, BattingAverage: 28.5, StrikeRate: 158.5, BowlingAverage: f(35.0), Economy: f(8.5), FantasyPointsAvg: 60},
	{ID: "p11", Name: "Mohammed Siraj", TeamID: "rcb", Role: models.RoleBowler, BattingAverage: 5.0, StrikeRate: 50.0, BowlingAverage: f(20.0), Economy: f(7.5), FantasyPointsAvg: 58},

	// MI
	{ID: "p12", Name: "Hardik Pandya", TeamID: "mi", Role: models.RoleAllRounder, BattingAverage: 30.1, StrikeRate: 145.0, BowlingAverage: f(28.0), Economy: f(8.9), FantasyPointsAvg: 70},
	{ID: "p13", Name: "Suryakumar Yadav", TeamID: "mi", Role: models.RoleBatsman, BattingAverage: 35.0, StrikeRate: 170.0, FantasyPointsAvg: 80},
	{ID: "p14", Name: "Jasprit Bumrah", TeamID: "mi", Role: models.RoleBowler, BattingAverage: 5.0, StrikeRate: 80.0, BowlingAverage: f(22.1), Economy: f(6.5), FantasyPointsAvg: 85},

	// GT, DC, KKR, RR, LSG
	{ID: "p15", Name: "Shubman Gill", TeamID: "gt", Role: models.RoleBatsman, BattingAverage: 45.0, StrikeRate: 135.0, FantasyPointsAvg: 72},
	{ID: "p16", Name: "Rashid Khan", TeamID: "gt", Role: models.RoleBowler, BattingAverage: 15.0, StrikeRate: 150.0, BowlingAverage: f(18.0), Economy: f(6.0), FantasyPointsAvg: 88},
	{ID: "p17", Name: "David Warner", TeamID: "dc", Role: models.RoleBatsman, BattingAverage: 40.0, StrikeRate: 140.0, FantasyPointsAvg: 68},
	{ID: "p18", Name: "Rishabh Pant", TeamID: "dc", Role: models.RoleWicketkeeper, BattingAverage: 34.0, StrikeRate: 148.0, FantasyPointsAvg: 65},
	{ID: "p19", Name: "Andre Russell", TeamID: "kkr", Role: models.RoleAllRounder, BattingAverage: 29.0, StrikeRate: 175.0, BowlingAverage: f(26.0), Economy: f(9.5), FantasyPointsAvg: 78},
	{ID: "p20", Name: "Sunil Narine", TeamID: "kkr", Role: models.RoleAllRounder, BattingAverage: 15.0, StrikeRate: 160.0, BowlingAverage: f(22.0), Economy: f(6.5), FantasyPointsAvg: 76},
	{ID: "p21", Name: "Sanju Samson", TeamID: "rr", Role: models.RoleWicketkeeper, BattingAverage: 36.0, StrikeRate: 138.0, FantasyPointsAvg: 64},
	{ID: "p22", Name: "Jos Buttler", TeamID: "rr", Role: models.RoleBatsman, BattingAverage: 38.0, StrikeRate: 145.0, FantasyPointsAvg: 75},
	{ID: "p23", Name: "Trent Boult", TeamID: "rr", Role: models.RoleBowler, BattingAverage: 8.0, StrikeRate: 90.0, BowlingAverage: f(25.0), Economy: f(7.8), FantasyPointsAvg: 58},
	{ID: "p24", Name: "KL Rahul", TeamID: "lsg", Role: models.RoleBatsman, BattingAverage: 45.0, StrikeRate: 132.0, FantasyPointsAvg: 70},
	{ID: "p25", Name: "Nicholas Pooran", TeamID: "lsg", Role: models.RoleBatsman, BattingAverage: 28.0, StrikeRate: 160.0, FantasyPointsAvg: 60},
}
