package validation

import "github.com/jmartinezl/game-leaderboard/internal/models"

// MaxScore is the highest accepted score value.
const MaxScore = 999_999_999

var emailRule = Rule{Required: true, Kind: KindString, MinLen: 6, MaxLen: 100, Email: true}
var passwordRule = Rule{Required: true, Kind: KindString, MinLen: 8, MaxLen: 50}

// RegisterSchema validates a new player registration.
var RegisterSchema = Schema{
	{Name: "email", Rule: emailRule},
	{Name: "password", Rule: passwordRule},
	{Name: "gameTime", Rule: Rule{Required: true, Kind: KindInt, Min: 0}},
}

// LoginSchema validates login credentials.
var LoginSchema = Schema{
	{Name: "email", Rule: emailRule},
	{Name: "password", Rule: passwordRule},
}

// PasswordSchema validates a password change.
var PasswordSchema = Schema{
	{Name: "password", Rule: passwordRule},
}

// GameTimeSchema validates a game time increment.
var GameTimeSchema = Schema{
	{Name: "gameTime", Rule: Rule{Required: true, Kind: KindInt, Min: 0}},
}

// ScoreSchema validates a score submission.
var ScoreSchema = Schema{
	{Name: "author", Rule: Rule{Required: true, Kind: KindString, MinLen: 3, MaxLen: 10}},
	{Name: "score", Rule: Rule{Required: true, Kind: KindInt, Min: 0, Max: MaxScore}},
	{Name: "mode", Rule: Rule{Required: true, Kind: KindString, Enum: models.Modes}},
}

// ScorePointsSchema validates an admin score value update.
var ScorePointsSchema = Schema{
	{Name: "score", Rule: Rule{Required: true, Kind: KindInt, Min: 0, Max: MaxScore}},
}
