package override

import "parks-api/internal/park"

const wikipedia = "Wikipedia"

const praterDescription = "Der Wiener Prater liegt im südöstlichen Teil der Flussinsel, die seit der 1875 beendeten Donauregulierung von Donau und Donaukanal gebildet wird. Eine offiziell definierte Begrenzung des Pratergebiets existiert nicht. Durch Verbauung hat sich im Lauf der Zeit die als „Prater“ bezeichnete Fläche deutlich verringert; so wird heute das verbaute Stuwerviertel (früher Schwimmschulmais, Feuerwerksmais) nicht mehr als Teil des Praters bezeichnet, ebenso der ganz im Südosten der Insel gelegene Hafen Freudenau, der auch als Winterhafen bezeichnet wird."

var praterLinks = []park.Link{
	{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Prater", Type: park.LinkWiki},
	{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/prater.html", Type: park.LinkOfficial},
}

// 普拉特各草坪共用同一段描述与链接
var praterMeadows = []string{
	"sulzwiese", "gross-enzersdorfer-wiese", "fasangarten", "rustenschacher", "grafenwiese",
	"pelzmais", "rosenbachl", "sonnenscheinwiese", "feuerwehrwiese", "wasserwiese", "avenue",
	"golfwiese", "epplwiese", "arenawiese", "forstwiesen-nord", "forstwiesen-sued",
	"seitenhafenwiese", "ameiswiese", "laufbergwiese", "zirkuswiese", "spenadlwiese",
	"untere-heustadlwiese", "bluemnwiese", "kaiserwiese", "meiereiwiese", "lusthauswiese",
	"konstantinhuegel", "schulverkehrsgartenwiese", "rennbahnstrassenwiese", "rotundenwiese",
}

// Default：内置补充数据表
func Default() *Store {
	m := map[string]Override{
		"donaupark": {
			PublicTransport: []string{"U1 VIC/UNO City"},
			Description:     "Der Donaupark wurde 1964 im Zuge der \"Wiener Internationalen Gartenschau 1964\" (WIG 1964) unter der Gesamtplanung des damaligen Stadtgartendirektors Prof. Ing. Alfred Auer (1922 bis 2002) von einer ehemaligen Mülldeponie zu einer Parkanlage umgestaltet.",
			Accessibility:   "Gut zugänglich, größtenteils ebene Wege",
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Donaupark", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/donaupark.html", Type: park.LinkOfficial},
			},
		},
		"stadtpark": {
			Name:               "Stadtpark",
			District:           1,
			Description:        "Der Wiener Stadtpark erstreckt sich vom Parkring im 1. Wiener Gemeindebezirk bis zum Heumarkt im 3. Wiener Gemeindebezirk.",
			DescriptionLicense: wikipedia,
			PublicTransport:    []string{"U4 Stadtpark", "Straßenbahn D, 71"},
			Accessibility:      "Gut zugänglich, größtenteils ebene Wege",
			Tips:               []string{"Johann-Strauss-Denkmal"},
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Wiener_Stadtpark", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/stadtpark.html", Type: park.LinkOfficial},
			},
		},
		"augarten": {
			Name:            "Augarten",
			District:        2,
			Address:         "Obere Augartenstraße, 1020 Wien",
			Description:     "Der Augarten ist der älteste Barockgarten Wiens und wurde 1712 für die Öffentlichkeit zugänglich gemacht. Neben der historischen Porzellanmanufaktur beherbergt der Park auch die markanten Flaktürme aus dem Zweiten Weltkrieg.",
			PublicTransport: []string{"U2 Taborstraße", "Straßenbahn 5, 31"},
			Accessibility:   "Größtenteils barrierefrei zugänglich",
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Augarten", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/augarten.html", Type: park.LinkOfficial},
			},
		},
		"tuerkenschanzpark": {
			Address:         "Türkenschanzstraße, 1190 Wien",
			Description:     "Der Türkenschanzpark ist eine Parkanlage im 18. Wiener Gemeindebezirk Währing. Der Park wurde 1888 auf der Türkenschanze eröffnet.",
			PublicTransport: []string{"Straßenbahn 9", "S45"},
			Accessibility:   "Hügelig jedoch mit betonierten Wege",
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/T%C3%BCrkenschanzpark", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/tuerkenschanzpark.html", Type: park.LinkOfficial},
			},
		},
		"prater-jesuitenwiese": {
			PublicTransport:    []string{"U2 Messe-Prater"},
			Description:        praterDescription,
			DescriptionLicense: wikipedia,
			Links:              praterLinks,
			Tips:               []string{"Volksstimme-Fest am letzten Wochenende in den Sommerferien"},
		},
		"kurpark-oberlaa": {
			PublicTransport:    []string{"U1 Oberlaa"},
			Description:        "Der Kurpark Oberlaa ist eine Parkanlage im 10. Wiener Gemeindebezirk Favoriten, am Südosthang des Laaer Berges bei Oberlaa. Seine Fläche beträgt rund 608.000 m². Gartenbaudenkmale, Wegsysteme und künstliche Bodenformationen stehen unter Denkmalschutz.",
			DescriptionLicense: wikipedia,
		},
		"teich-hirschstetten": {
			Description:        "Der Badeteich Hirschstetten (auch Ziegelhofteich genannt) ist einer von vielen Naturbadeplätzen im 22. Wiener Gemeindebezirk Donaustadt. Er befindet sich in der Nähe der Blumengärten Hirschstetten. Die Wasserfläche beträgt ca. 127.500 m² bei einer Breite von ca. 280 m und einer Länge von 540 m. Die maximale Tiefe wurde bereits Mitte der 1970er Jahre mit etwa 10 Meter beziffert[2], wobei exakte Angaben dazu bisher fehlen, zumal der Grundwasserspiegel später durch eine längere Regenperiode ansteigen sollte, was zumindest zu einer vorübergehenden Erhöhung der Wassertiefe geführt haben dürfte.",
			DescriptionLicense: wikipedia,
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Teich_Hirschstetten", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/teich-hirschstetten.html", Type: park.LinkOfficial},
			},
		},
		"friedhof-st-marx": {
			Description:        "Der Sankt Marxer Friedhof im 3. Wiener Gemeindebezirk Landstraße wurde 1874 geschlossen und steht heute unter Denkmalschutz. Die wohl bekannteste Grabstätte auf diesem Friedhof ist jene des Komponisten Wolfgang Amadeus Mozart. Die Stadt Wien führt den Sankt Marxer Friedhof als öffentlich zugängliche Parkanlage.",
			DescriptionLicense: wikipedia,
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Sankt_Marxer_Friedhof", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/friedhof-st-marx.html", Type: park.LinkOfficial},
			},
		},
		"poetzleinsdorfer-schlosspark": {
			Description:        "Der Park liegt im Währinger Bezirksteil Pötzleinsdorf und dehnt sich entlang des Nordhanges des Schafbergs ellipsenförmig zwischen Pötzleinsdorfer Straße und Geymüllergasse im Norden sowie Ladenburghöhe und Schafberggasse im Osten und Süden aus. Im Westen wird er durch einen nicht benannten Weg, der vom Westende der Ladenburghöhe zum Westende der Pötzleinsdorfer Straße führt, begrenzt.",
			DescriptionLicense: wikipedia,
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Pötzleinsdorfer_Schlosspark", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/poezleinsdorfer-schlosspark.html", Type: park.LinkOfficial},
			},
		},
		"pa-loewygrube": {
			Description:        "Die Parkanlage Löwygrube ist eine ca. 164.000 m² naturnahe Parkanlage im Bezirksteil Oberlaa. Die Parkanlage liegt zwischen Bitterlichstraße, An der Ostbahn, Donabaumgasse und Löwyweg. Sie wird extensiv gepflegt und ist fast vollständig als Hundezone gewidmet. Neben weitläufigen Wiesenflächen und einem alten Baumbestand verfügt sie über einen Kinderspielplatz, Fußballplatz, öffentliche Toilette, Sitzmöglichkeiten und einen Trinkbrunnen. Die Löwygrube gehört mit dem Kurpark Oberlaa, dem Volkspark Laaerberg, dem Böhmischen Prater und dem Laaerwald zum Großerholungsraum Laaerberg.",
			DescriptionLicense: wikipedia,
			Links: []park.Link{
				{Title: "Wikipedia", URL: "https://de.wikipedia.org/wiki/Löwygrube", Type: park.LinkWiki},
				{Title: "Stadt Wien", URL: "https://www.wien.gv.at/umwelt/parks/anlagen/loewygrube.html", Type: park.LinkOfficial},
			},
		},
		"laaer-berg": {
			Description: "Der Laaer Berg bildet mit dem westlich gelegenen Wienerberg (244 m ü. A.) und dem dazwischenliegenden Boschberg den weitesten Vorsprung des Wienerwalds in das Wiener Becken und gehört zur Terrassenlandschaft am Beckenrand. Der Hügelzug liegt zwischen dem Tal der Wien (zum Donaukanal) und der Donau im Norden und der Niederung der Liesing (zur Schwechat) im Süden. Er bildet den östlichsten Ausläufer der Nordalpen im Raum Wien und den Sporn zwischen dem Donautal und dem Talungstrichter des südlichen Wiener Beckens und des Steinfelds.",
		},
		"wasserpark": {
			Description: "Der Floridsdorfer Wasserpark ist ein kleiner, als Parkanlage gestalteter Teil der Alten Donau im 21. Wiener Gemeindebezirk, Floridsdorf. Der Park wurde von 1928 bis 1929 angelegt und hat eine Fläche von 143.000 m², rund ein Drittel davon wird von Wasserflächen eingenommen.",
		},
		"pa-roter-berg": {
			Description: "Der Rote Berg liegt im Süden des Bezirksteils Ober-St.-Veit an der Grenze zum Bezirksteil Lainz. Der nur am Rand verbaute, wenig bewaldete Hügel bildet mit den nordwestlich anschließenden, unwesentlich höheren Hügeln Girzenberg und Trazerberg einen nicht von Straßen durchquerten Grünraum. Unter den drei Bergen verläuft von Nordwest nach Südost der in den 2000er Jahren gebaute Lainzer Tunnel, der von den ÖBB Ende 2012 in Betrieb genommen wurde (Sicherheitsausstieg gegenüber Veitingergasse 59). In der Senke östlich des Roten Bergs verlaufen in Nord-Süd-Richtung die Verbindungsbahn zwischen West- und Südbahn sowie der verrohrte Lainzerbach, dann steigt das Gelände nach Osten zum Küniglberg an.",
		},
		"draschepark": {
			Description: "Der Draschepark ist eine 13 Hektar große Parkanlage in Inzersdorf im 23. Wiener Gemeindebezirk Liesing. Er ging aus dem Park rund um die beiden als Schloss Inzersdorf bezeichneten Schlösser hervor. Der Name des Parks verweist auf die Familie Drasche von Wartinberg, die ab 1857 die beiden Schlösser auf dem Gelände besaß.",
		},
		"schweizergarten": {
			Description: "Der Schweizergarten ist eine Parkanlage im 3. Wiener Gemeindebezirk, Landstraße, zwischen dem Park des Belvederes bzw. dem Landstraßer Gürtel im Norden, dem Quartier Belvedere (dem Areal des früheren Südbahnhofs) bzw. der Arsenalstraße im Westen und dem Arsenal bzw. der Ghegastraße im Südosten.",
		},
		"auer-welsbach-park": {
			Description: "Der Auer-Welsbach-Park ist eine Parkanlage im 15. Wiener Gemeindebezirk Rudolfsheim-Fünfhaus und wird von Linker Wienzeile, Schönbrunner Schlossallee, Mariahilfer Straße und Winckelmannstraße begrenzt. Mit einer Fläche von rund 110.000 m² ist er der größte Park des 15. Bezirks. Benannt ist er nach dem österreichischen Chemiker Carl Auer von Welsbach.",
		},
	}
	for _, meadow := range praterMeadows {
		m["prater-"+meadow] = Override{
			Description:        praterDescription,
			DescriptionLicense: wikipedia,
			Links:              praterLinks,
		}
	}
	return &Store{m: m}
}
