package generator

import "fmt"

// galaxyNames is the pool a galaxy name is drawn from when the config does
// not fix one.
var galaxyNames = []string{
	"Andromeda", "Milky Way", "Centaurus", "Pegasus", "Cygnus", "Draco",
	"Whirlpool", "Triangulum", "Sombrero", "Sculptor",
}

// systemNames are assigned to systems by child index; past one pass the
// name wraps with a numeric suffix so IDs stay readable at any count.
var systemNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Alsephina", "Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda",
	"Mizar", "Nunki", "Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab",
	"Saiph", "Zubenelgenubi", "Enif", "Schedar", "Markab", "Unukalhai", "Tau",
}

// planetSuffixes order the planets of a system.
var planetSuffixes = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"Prime", "Alpha", "Beta", "Gamma", "Major", "Minor", "Core", "Outer",
}

func galaxyName(nameSeed uint64) string {
	return galaxyNames[int(nameSeed%uint64(len(galaxyNames)))]
}

func systemName(index int) string {
	name := systemNames[index%len(systemNames)]
	if index >= len(systemNames) {
		return fmt.Sprintf("%s %d", name, index/len(systemNames)+1)
	}
	return name
}

func planetName(systemName string, index int) string {
	suffix := planetSuffixes[index%len(planetSuffixes)]
	if index >= len(planetSuffixes) {
		return fmt.Sprintf("%s %s-%d", systemName, suffix, index/len(planetSuffixes)+1)
	}
	return fmt.Sprintf("%s %s", systemName, suffix)
}

func satelliteName(planetName string, index int) string {
	letter := rune('a' + index%26)
	if index >= 26 {
		return fmt.Sprintf("%s %c%d", planetName, letter, index/26+1)
	}
	return fmt.Sprintf("%s %c", planetName, letter)
}
