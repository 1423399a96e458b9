package memory

import (
	"strconv"

	"github.com/riskibarqy/player-scout/internal/domain/player"
)

// SeedPlayers returns a small dataset that fills a 4-3-3 for the memory driver.
func SeedPlayers() []player.Player {
	players := []player.Player{
		{ID: 158023, ShortName: "L. Messi", LongName: "Lionel Andrés Messi Cuccittini", Age: 36, ClubName: "Inter Miami", LeagueName: "Major League Soccer", Nationality: "Argentina", Positions: "CF, RW", Overall: 90, Potential: 90, ValueEUR: 41000000},
		{ID: 20801, ShortName: "Cristiano Ronaldo", LongName: "Cristiano Ronaldo dos Santos Aveiro", Age: 38, ClubName: "Al Nassr", LeagueName: "Pro League", Nationality: "Portugal", Positions: "ST", Overall: 86, Potential: 86, ValueEUR: 23500000},
		{ID: 231747, ShortName: "K. Mbappé", LongName: "Kylian Mbappé Lottin", Age: 24, ClubName: "Paris Saint Germain", LeagueName: "Ligue 1", Nationality: "France", Positions: "ST, LW", Overall: 91, Potential: 94, ValueEUR: 181500000},
		{ID: 239085, ShortName: "E. Haaland", LongName: "Erling Braut Haaland", Age: 22, ClubName: "Manchester City", LeagueName: "Premier League", Nationality: "Norway", Positions: "ST", Overall: 91, Potential: 94, ValueEUR: 185000000},
		{ID: 192985, ShortName: "K. De Bruyne", LongName: "Kevin De Bruyne", Age: 32, ClubName: "Manchester City", LeagueName: "Premier League", Nationality: "Belgium", Positions: "CM, CAM", Overall: 91, Potential: 91, ValueEUR: 107500000},
		{ID: 209331, ShortName: "M. Salah", LongName: "Mohamed Salah Ghaly", Age: 31, ClubName: "Liverpool", LeagueName: "Premier League", Nationality: "Egypt", Positions: "RW", Overall: 89, Potential: 89, ValueEUR: 85500000},
		{ID: 238794, ShortName: "Vini Jr.", LongName: "Vinícius José Paixão de Oliveira Júnior", Age: 23, ClubName: "Real Madrid", LeagueName: "La Liga", Nationality: "Brazil", Positions: "LW", Overall: 89, Potential: 94, ValueEUR: 158500000},
		{ID: 252371, ShortName: "J. Bellingham", LongName: "Jude Victor William Bellingham", Age: 20, ClubName: "Real Madrid", LeagueName: "La Liga", Nationality: "England", Positions: "CAM, CM", Overall: 86, Potential: 92, ValueEUR: 100500000},
		{ID: 231866, ShortName: "Rodri", LongName: "Rodrigo Hernández Cascante", Age: 27, ClubName: "Manchester City", LeagueName: "Premier League", Nationality: "Spain", Positions: "CDM, CM", Overall: 89, Potential: 90, ValueEUR: 105000000},
		{ID: 212622, ShortName: "J. Kimmich", LongName: "Joshua Walter Kimmich", Age: 28, ClubName: "FC Bayern München", LeagueName: "Bundesliga", Nationality: "Germany", Positions: "CDM, RB", Overall: 88, Potential: 88, ValueEUR: 80500000},
		{ID: 177003, ShortName: "L. Modrić", LongName: "Luka Modrić", Age: 38, ClubName: "Real Madrid", LeagueName: "La Liga", Nationality: "Croatia", Positions: "CM", Overall: 87, Potential: 87, ValueEUR: 23500000},
		{ID: 239053, ShortName: "F. Valverde", LongName: "Federico Santiago Valverde Dipetta", Age: 25, ClubName: "Real Madrid", LeagueName: "La Liga", Nationality: "Uruguay", Positions: "CM, RM", Overall: 88, Potential: 89, ValueEUR: 107500000},
		{ID: 203376, ShortName: "V. van Dijk", LongName: "Virgil van Dijk", Age: 32, ClubName: "Liverpool", LeagueName: "Premier League", Nationality: "Netherlands", Positions: "CB", Overall: 89, Potential: 89, ValueEUR: 56000000},
		{ID: 239818, ShortName: "Rúben Dias", LongName: "Rúben Santos Gato Alves Dias", Age: 26, ClubName: "Manchester City", LeagueName: "Premier League", Nationality: "Portugal", Positions: "CB", Overall: 89, Potential: 91, ValueEUR: 94000000},
		{ID: 243715, ShortName: "W. Saliba", LongName: "William Alain André Gabriel Saliba", Age: 22, ClubName: "Arsenal", LeagueName: "Premier League", Nationality: "France", Positions: "CB", Overall: 86, Potential: 90, ValueEUR: 79500000},
		{ID: 235212, ShortName: "A. Hakimi", LongName: "Achraf Hakimi Mouh", Age: 24, ClubName: "Paris Saint Germain", LeagueName: "Ligue 1", Nationality: "Morocco", Positions: "RB, RM", Overall: 84, Potential: 86, ValueEUR: 60500000},
		{ID: 231281, ShortName: "T. Alexander-Arnold", LongName: "Trent Alexander-Arnold", Age: 24, ClubName: "Liverpool", LeagueName: "Premier League", Nationality: "England", Positions: "RB", Overall: 86, Potential: 88, ValueEUR: 78000000},
		{ID: 232656, ShortName: "T. Hernández", LongName: "Theo Bernard François Hernández", Age: 25, ClubName: "AC Milan", LeagueName: "Serie A", Nationality: "France", Positions: "LB, LM", Overall: 85, Potential: 87, ValueEUR: 69500000},
		{ID: 234396, ShortName: "A. Davies", LongName: "Alphonso Boyle Davies", Age: 22, ClubName: "FC Bayern München", LeagueName: "Bundesliga", Nationality: "Canada", Positions: "LB, LM", Overall: 83, Potential: 87, ValueEUR: 57500000},
		{ID: 192119, ShortName: "T. Courtois", LongName: "Thibaut Nicolas Marc Courtois", Age: 31, ClubName: "Real Madrid", LeagueName: "La Liga", Nationality: "Belgium", Positions: "GK", Overall: 90, Potential: 90, ValueEUR: 63000000},
		{ID: 212831, ShortName: "Alisson", LongName: "Alisson Ramsés Becker", Age: 30, ClubName: "Liverpool", LeagueName: "Premier League", Nationality: "Brazil", Positions: "GK", Overall: 89, Potential: 89, ValueEUR: 58000000},
		{ID: 192448, ShortName: "M. ter Stegen", LongName: "Marc-André ter Stegen", Age: 31, ClubName: "FC Barcelona", LeagueName: "La Liga", Nationality: "Germany", Positions: "GK", Overall: 89, Potential: 89, ValueEUR: 55500000},
		{ID: 202126, ShortName: "H. Kane", LongName: "Harry Edward Kane", Age: 30, ClubName: "FC Bayern München", LeagueName: "Bundesliga", Nationality: "England", Positions: "ST", Overall: 90, Potential: 90, ValueEUR: 119500000},
		{ID: 188545, ShortName: "R. Lewandowski", LongName: "Robert Lewandowski", Age: 35, ClubName: "FC Barcelona", LeagueName: "La Liga", Nationality: "Poland", Positions: "ST", Overall: 90, Potential: 90, ValueEUR: 58000000},
		{ID: 200104, ShortName: "H. Son", LongName: "Heung Min Son", Age: 31, ClubName: "Tottenham Hotspur", LeagueName: "Premier League", Nationality: "Korea Republic", Positions: "LW, ST", Overall: 87, Potential: 87, ValueEUR: 73500000},
		{ID: 200145, ShortName: "Casemiro", LongName: "Carlos Henrique Venancio Casimiro", Age: 31, ClubName: "Manchester United", LeagueName: "Premier League", Nationality: "Brazil", Positions: "CDM", Overall: 87, Potential: 87, ValueEUR: 51500000},
	}

	for i := range players {
		players[i].PlayerURL = "https://sofifa.com/player/" + strconv.FormatInt(players[i].ID, 10)
	}

	return players
}
