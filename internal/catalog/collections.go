package catalog

import "github.com/maxvelasco/portuguese-map/internal/domain"

// MarkerSpec is a curated entry plus the icon it is drawn with.
type MarkerSpec struct {
	Entry domain.NarrativeEntry
	Type  domain.MarkerType
}

// Collection is a named set of markers and the routes connecting them.
type Collection struct {
	Name    string
	Markers []MarkerSpec
	Routes  []domain.Route
}

// Collections returns the curated collections in load order. Every call
// builds fresh values, so callers may keep or modify the result.
func Collections() []Collection {
	return []Collection{alineMotta()}
}

const (
	pontesTitle = `"Pontes Sobre Abismos" (2017) de Aline Motta`
	pontesVideo = "https://player.vimeo.com/video/486936176"
	oncaTitle   = "A lenda da Onça pintada"
)

func at(name string) *domain.Coordinates {
	c, ok := locations[name]
	if !ok {
		return nil
	}
	return &c
}

func entry(title, description, location, url string) domain.NarrativeEntry {
	return domain.NarrativeEntry{
		Title:       title,
		Description: description,
		Coordinates: at(location),
		Link:        domain.NewLink(url, "", true),
	}
}

func route(title, description string, stops ...string) domain.Route {
	path := make([]domain.Coordinates, 0, len(stops))
	for _, s := range stops {
		path = append(path, locations[s])
	}
	return domain.Route{
		Path:  path,
		Popup: domain.NarrativeEntry{Title: title, Description: description},
	}
}

func alineMotta() Collection {
	niteroi := entry("Aline Motta", "Aline Motta nasceu em Niterói, RJ", "niteroi", pontesVideo)
	niteroi.LocationName = "Niterói, RJ"

	markers := []MarkerSpec{
		{Type: domain.MarkerPerson, Entry: niteroi},
		{Type: domain.MarkerVideo, Entry: entry(pontesTitle,
			"Aline Motta viajou para o Rio de Janeiro para produzir o filme “Pontes Sobre Abismos”",
			"rio", pontesVideo)},
		{Type: domain.MarkerVideo, Entry: entry(pontesTitle,
			"Aline Motta viajou para Minas Gerais para produzir o filme “Pontes Sobre Abismos”",
			"minas_gerais", pontesVideo)},
		{Type: domain.MarkerVideo, Entry: entry(pontesTitle,
			"Aline Motta viajou para Portugal para produzir o filme “Pontes Sobre Abismos”",
			"portugal", pontesVideo)},
		{Type: domain.MarkerVideo, Entry: entry(pontesTitle,
			"Aline Motta viajou para Serra Leoa para produzir o filme “Pontes Sobre Abismos”",
			"serra_leoa", pontesVideo)},
		{Type: domain.MarkerText, Entry: entry(oncaTitle,
			"As origens da lenda do leopardo e do fogo são dos povos indígenas brasileiros. O Cristino Wapichana é a pessoa que é mais associada com esse conto, e ele é do estado de Roraima.",
			"roraima", "https://www.youtube.com/embed/Mi1q3mVRhHk")},

		{Type: domain.MarkerVideo, Entry: entry(`"Diário de uma busca" (2010) de Flávia Castro`,
			"A cidade onde nasceu Flávia Castro",
			"porto_alegre", "https://yale.hosted.panopto.com/Panopto/Pages/Viewer.aspx?id=187b9123-e6fe-4047-935d-b205010870be")},
		{Type: domain.MarkerVideo, Entry: entry(`"Que bom te ver viva" de Lúcia Murat`,
			"A cidade onde nasceu Lúcia Murat",
			"rio", "https://yale.hosted.panopto.com/Panopto/Pages/Viewer.aspx?id=2dec8a4a-b5e9-4a86-ada6-b20200340cdc")},
		{Type: domain.MarkerVideo, Entry: entry(`"FotogrÁFRICA" (2016), de Tila Chitunda`,
			"A cidade onde nasceu Tila Chitunda, filha de pais angolanos",
			"olinda", "https://player.vimeo.com/video/190026474")},
		{Type: domain.MarkerVideo, Entry: entry(`"FotogrÁFRICA" (2016), de Tila Chitunda`,
			"A cidade onde o filme é premiado como melhor filme na III Mostra Internacional de Cinema na Cova da Moura, 2018",
			"cova_da_moura", "https://player.vimeo.com/video/190026474")},
		{Type: domain.MarkerVideo, Entry: entry(`"Trago Comigo" (2016), de Tata Amaral`,
			"A cidade onde nasceu Tata Amaral",
			"sao_paulo", "https://yale.hosted.panopto.com/Panopto/Pages/Viewer.aspx?id=a3b8a1b2-aee4-4714-a87c-b1ff00124103")},
		{Type: domain.MarkerVideo, Entry: entry("36º Festival del Nuevo Cinema Latino-Americano de Havana, Cuba (2014)",
			"A cidade onde o filme de Tata Amaral estreou",
			"havana", "")},
		{Type: domain.MarkerPerson, Entry: entry(`"Diário de uma busca" (2010) de Flávia Castro`,
			"A cidade onde Flávia Castro se exila de criança com sua família durante o regime militar",
			"paris", "")},
		{Type: domain.MarkerVideo, Entry: entry(`"Lusófonas" (2019), Carolina Paiva`,
			"Uma das cidades retratadas por Carolina Paiva no seu documentário",
			"lisbon", "https://video-alexanderstreet-com.yale.idm.oclc.org/watch/tecendo-nossos-caminhos-weaving-our-paths-3")},
		{Type: domain.MarkerVideo, Entry: entry(`"Divinas Divas" (2016), de Leandra Leal`,
			"O Teatro Rival, no Rio de Janeiro, é o local onde a primeira geração de artistas drag queens se apresentaram.",
			"rio", "https://yale.hosted.panopto.com/Panopto/Pages/Viewer.aspx?id=3496cbe8-c44e-48a7-8bad-b21000f9bea7")},
		{Type: domain.MarkerVideo, Entry: entry(`"Machimbrao" (2016), de Lara Sousa`,
			"A cidade onde se passa a história do documentário em curta-metragem",
			"havana", "https://player.vimeo.com/video/196610729")},
		{Type: domain.MarkerVideo, Entry: entry(`"Bixa Travesty" (2018), de Claudia Priscilla & Kiko Goifman. Roteiro de Linn da Quebrada, Claudia Priscilla & Kiko Goifman`,
			"A cidade onde se passa a historia do documentário sobre Linn da Quebrada, mais especificamente na zona leste, periferia de São Paulo",
			"sao_paulo", "https://docuseek2-com.yale.idm.oclc.org/cart/product/4715")},
		{Type: domain.MarkerVideo, Entry: entry("Sítio Soares",
			"Foi a lugar do 20° Congresso da União Nacional dos Estudantes (UNE), onde a polícia paulista prende Vladimir Palmeira e mais 1239",
			"ibiuna", "")},
	}

	generos := route("A questão de gênero em diferentes perspectivas",
		`Os filmes "Bixa Travesty," "Divinas Divas" e "Machimbrao" se conectam com a questão de gênero, explorando temas também similares sobre privilégio, segurança e beleza. Cada filme traz as expectativas sociais ou das suas próprias comunidades. Em Machimbrao, filmado em Cuba, as pessoas que frequentam a barbearia, sobretudo homens, reforçam, na entrevista com a diretora, suas expectativas da heteronormatividade, enquanto que em Bixa Travesty e Divinas Divas questiona-se o que se entende por identidade.`,
		"rio", "havana")

	routes := []domain.Route{
		route(pontesTitle, "Aline Motta viajou para o Rio de Janeiro para produzir o filme “Pontes Sobre Abismos”", "niteroi", "rio"),
		route(pontesTitle, "Aline Motta viajou para Minas Gerais para produzir o filme “Pontes Sobre Abismos”", "niteroi", "minas_gerais"),
		route(pontesTitle, "Aline Motta viajou para Portugal para produzir o filme “Pontes Sobre Abismos”", "niteroi", "portugal"),
		route(pontesTitle, "Aline Motta viajou para Serra Leoa para produzir o filme “Pontes Sobre Abismos”", "niteroi", "serra_leoa"),
		route(oncaTitle, `Alina Motta usa a lenda da onça pintada como alegoria da sua própria história no filme "Pontes Sobre Abismos" (2017).`, "niteroi", "roraima"),
		route("“Que bom te ver viva” de Lúcia Murat",
			"Sítio Soares em Ibiúna, São Paulo foi uma das demonstrações mencionadas no filme “Que bom te ver viva” de Lúcia Murat",
			"rio", "ibiuna"),
		route("Memória e resistência das mulheres na luta contra a ditadura no Brasil",
			`Os filmes "Diário de uma busca" e "Que bom te ver viva" estão unidos pelo foco comum na história sombria do Brasil e no impacto da ditadura militar na memória pessoal e coletiva. Ambos exploram as experiências de militância, prisão e ativismo, com ênfase especial nas mulheres. Que Bom Te Ver Viva, de Lúcia Murat, destaca mulheres que resistiram e suportaram torturas, enquanto Diário de Uma Busca, de Flávia Castro, retrata a resiliência de mulheres lidando com a perda e perguntas sem resposta depois perderem a família para a resistência.`,
			"porto_alegre", "rio"),
		route("Retratos da diáspora",
			"Durante a III Mostra Internacional de Cinema na Cova, em 2018, o documentário FotogrÁFRICA foi exibido em um contexto que destaca produções relacionadas à diáspora africana, reforçando sua relevância para comunidades negras no cenário global.",
			"olinda", "cova_da_moura"),
		route("Representação da ditadura militar no cinema e estreia em Cuba",
			"O filme teve sua estreia mundial na Seleção Oficial deste festival, que é um dos mais importantes para o cinema latino-americano. A exibição em Havana marcou o início de uma jornada internacional para a obra, colocando o Brasil em destaque no cenário cinematográfico global.",
			"sao_paulo", "havana"),
		route("Perspectivas das mulheres sobre o  mundo lusófono",
			`Os filmes "Diário de Uma Busca" e "Lusófonas" conectam as experiências das brasileiras com o mundo exterior. O documentário de Castro, com os lugares de exílio (ela se exila de criança com sua família durante a ditadura militar), e o de Paiva, com as ligações de diferentes história de mulheres no mundo lusófono (realidades semelhantes independete de países). As duas diretoras exploram o legado das estruturas políticas e sociais do Brasil e de Portugal, revelando as dificuldades de resistência em contextos e lugares variados, resultado do legado da violência de classe, de gênero e de raça. Há uma violência colonial que se repete na modernidade tornando difícil o empoderamento feminino ou a busca por justiça e memória. A realidade do exílio ou as leis restritas sobre o corpo feminino têm um núcleo comum que é a repressão para silenciar o povo. Fica claro, em filmes diferentes, como as ideias coloniais e repressivas continuam impactando as brasileiras e as mulheres lusófonas em geral.`,
			"paris", "lisbon"),
		generos,
		route(generos.Popup.Title, generos.Popup.Description, "havana", "sao_paulo"),
	}

	return Collection{Name: "Aline Motta", Markers: markers, Routes: routes}
}
