package lib

import "strings"
import "encoding/json"

// Parsecsv convert a string of comma seperated value into list of
// string of values.
func Parsecsv(input string) []string {
	if input == "" {
		return nil
	}
	outs := make([]string, 0)
	for _, s := range strings.Split(input, ",") {
		if s = strings.Trim(s, " \t\r\n"); s != "" {
			outs = append(outs, s)
		}
	}
	return outs
}

// Prettystats uses json.MarshalIndent, if pretty is true, instead of
// json.Marshal. If Marshal return error Prettystats will panic.
func Prettystats(stats map[string]interface{}, pretty bool) string {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(stats, "", "  ")
	} else {
		data, err = json.Marshal(stats)
	}
	if err != nil {
		panic(err)
	}
	return string(data)
}
