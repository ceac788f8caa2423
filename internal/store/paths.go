package store

// Path layout of the store. Everything a player owns lives under their
// document, so deleting the tree at PlayerPath cascades over programs and
// logs.

const PlayersCollection = "players"

func PlayerPath(playerID string) string {
	return PlayersCollection + "/" + playerID
}

func ProgramPath(playerID, discipline string) string {
	return PlayerPath(playerID) + "/programs/" + discipline
}

func LogsCollection(playerID string) string {
	return PlayerPath(playerID) + "/logs"
}
