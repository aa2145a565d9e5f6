package model

// City is an entry of the static destination reference set
type City struct {
	Name    string `toml:"name" json:"name"`
	Country string `toml:"country" json:"country"`
	Icon    string `toml:"icon" json:"icon"`
	Emoji   string `toml:"emoji" json:"emoji"`
}

// Label returns "Name, Country"
func (c City) Label() string {
	if c.Country == "" {
		return c.Name
	}
	return c.Name + ", " + c.Country
}
