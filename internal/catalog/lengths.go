package catalog

import "pacenote/internal/domain"

// stageLengths maps the stage length reported in telemetry, in metres, to the
// stage it identifies.
var stageLengths = map[float64]domain.StageID{
	// 01.Rallye Monte-Carlo
	18799.8984375:    {Location: 1, Stage: 1},  // La Bollène-Vésubie - Peïra Cava
	18606.03125:      {Location: 1, Stage: 2},  // Peïra Cava - La Bollène-Vésubie
	12349.2734375:    {Location: 1, Stage: 3},  // La Bollène-Vésubie - Col de Turini
	12167.2060546875: {Location: 1, Stage: 4},  // Pra d'Alart
	6745.568359375:   {Location: 1, Stage: 5},  // La Maïris
	6680.1611328125:  {Location: 1, Stage: 6},  // Baisse de Patronel
	17064.154296875:  {Location: 1, Stage: 7},  // Saint-Léger-les-Mélèzes - La Bâtie-Neuve
	16908.458984375:  {Location: 1, Stage: 8},  // La Bâtie-Neuve - Saint-Léger-les-Mélèzes
	8478.833984375:   {Location: 1, Stage: 9},  // Moissière
	8306.2373046875:  {Location: 1, Stage: 10}, // Ancelle
	8924.6201171875:  {Location: 1, Stage: 11}, // Ravin de Coste Belle
	8922.3984375:     {Location: 1, Stage: 12}, // Les Borels
	// 02.Rally Sweden
	21768.318359375:   {Location: 2, Stage: 1},  // Hof-Finnskog
	21780.54296875:    {Location: 2, Stage: 2},  // Åsnes
	11371.87109375:    {Location: 2, Stage: 3},  // Spikbrenna
	11270.384765625:   {Location: 2, Stage: 4},  // Lauksjøen
	10706.1689453125:  {Location: 2, Stage: 5},  // Åslia
	10775.3662109375:  {Location: 2, Stage: 6},  // Knapptjernet
	8551.2998046875:   {Location: 2, Stage: 7},  // Vargasen
	8549.8896484375:   {Location: 2, Stage: 8},  // Lövstaholm
	3630.523193359375: {Location: 2, Stage: 9},  // Älgsjön
	3678.771240234375: {Location: 2, Stage: 10}, // Ekshärad
	5182.29833984375:  {Location: 2, Stage: 11}, // Stora Jangen
	5088.5087890625:   {Location: 2, Stage: 12}, // Sunne
	// 03.Guanajuato Rally México
	27065.39453125:   {Location: 3, Stage: 1},  // El Chocolate
	25112.0078125:    {Location: 3, Stage: 2},  // Otates
	13419.46875:      {Location: 3, Stage: 3},  // Ortega
	11845.1259765625: {Location: 3, Stage: 4},  // Las Minas
	13308.2275390625: {Location: 3, Stage: 5},  // Ibarrilla
	7556.85693359375: {Location: 3, Stage: 6},  // Derramadero
	10915.162109375:  {Location: 3, Stage: 7},  // El Brinco
	10996.3623046875: {Location: 3, Stage: 8},  // Guanajuatito
	8367.2353515625:  {Location: 3, Stage: 9},  // Alfaro
	9197.359375:      {Location: 3, Stage: 10}, // Mesa Cuata
	6154.95751953125: {Location: 3, Stage: 11}, // San Diego
	7242.689453125:   {Location: 3, Stage: 12}, // El Mosquito
	// 04.Croatia Rally
	25884.58203125:   {Location: 4, Stage: 1},  // Bliznec
	25880.095703125:  {Location: 4, Stage: 2},  // Trakošćan
	13017.4873046875: {Location: 4, Stage: 3},  // Vrbno
	13012.927734375:  {Location: 4, Stage: 4},  // Zagorska Sela
	13264.982421875:  {Location: 4, Stage: 5},  // Kumrovec
	13185.1201171875: {Location: 4, Stage: 6},  // Grdanjci
	10568.0625:       {Location: 4, Stage: 7},  // Stojdraga
	10559.8603515625: {Location: 4, Stage: 8},  // Mali Lipovec
	8101.09228515625: {Location: 4, Stage: 9},  // Hartje
	9022.259765625:   {Location: 4, Stage: 10}, // Kostanjevac
	9099.501953125:   {Location: 4, Stage: 11}, // Krašić
	9101.0771484375:  {Location: 4, Stage: 12}, // Petruš Vrh
	// 05.Vodafone Rally de Portugal
	30647.3671875:   {Location: 5, Stage: 1},  // Baião
	31512.115234375: {Location: 5, Stage: 2},  // Caminha
	17035.876953125: {Location: 5, Stage: 3},  // Fridão
	15447.84765625:  {Location: 5, Stage: 4},  // Marão
	15045.11328125:  {Location: 5, Stage: 5},  // Ponte de Lima
	8186.74609375:   {Location: 5, Stage: 6},  // Viana do Castelo
	7591.076171875:  {Location: 5, Stage: 7},  // Ervideiro
	8477.583984375:  {Location: 5, Stage: 8},  // Celeiro
	7806.734375:     {Location: 5, Stage: 9},  // Touca
	7703.224609375:  {Location: 5, Stage: 10}, // Vila Boa
	7798.4951171875: {Location: 5, Stage: 11}, // Carrazedo
	7733.7841796875: {Location: 5, Stage: 12}, // Anjos
	// 06.Rally Italia Sardegna
	31854.994140625:  {Location: 6, Stage: 1},  // Rena Majore
	31971.994140625:  {Location: 6, Stage: 2},  // Monte Olia
	13663.78515625:   {Location: 6, Stage: 3},  // Littichedda
	18540.404296875:  {Location: 6, Stage: 4},  // Ala del Sardi
	16802.18359375:   {Location: 6, Stage: 5},  // Mamone
	7913.38134765625: {Location: 6, Stage: 6},  // Li Pinnenti
	8093.1669921875:  {Location: 6, Stage: 7},  // Malti
	7856.53857421875: {Location: 6, Stage: 8},  // Bassacutena
	9376.2978515625:  {Location: 6, Stage: 9},  // Bortigiadas
	9421.0478515625:  {Location: 6, Stage: 10}, // Sa Mela
	7818.212890625:   {Location: 6, Stage: 11}, // Monte Muvri
	7790.3369140625:  {Location: 6, Stage: 12}, // Monte Acuto
	// 07.Safari Rally Kenya
	10021.7666015625: {Location: 7, Stage: 1},  // Malewa
	9891.7412109375:  {Location: 7, Stage: 2},  // Tarambete
	5753.6005859375:  {Location: 7, Stage: 3},  // Moi North
	5739.994140625:   {Location: 7, Stage: 4},  // Marula
	4848.55517578125: {Location: 7, Stage: 5},  // Wileli
	4649.8076171875:  {Location: 7, Stage: 6},  // Kingono
	20541.1796875:    {Location: 7, Stage: 7},  // Soysambu
	20521.3984375:    {Location: 7, Stage: 8},  // Mbaruk
	10031.7802734375: {Location: 7, Stage: 9},  // Sugunoi
	9844.90234375:    {Location: 7, Stage: 10}, // Nakuru
	11013.4697265625: {Location: 7, Stage: 11}, // Kanyawa
	11013.076171875:  {Location: 7, Stage: 12}, // Kanyawa - Nakura
	// 08.Rally Estonia
	17430.73828125:   {Location: 8, Stage: 1},  // Otepää
	17420.412109375:  {Location: 8, Stage: 2},  // Rebaste
	8934.5380859375:  {Location: 8, Stage: 3},  // Nüpli
	8952.447265625:   {Location: 8, Stage: 4},  // Truuta
	8832.642578125:   {Location: 8, Stage: 5},  // Koigu
	9093.1376953125:  {Location: 8, Stage: 6},  // Kooraste
	12149.255859375:  {Location: 8, Stage: 7},  // Elva
	11939.3037109375: {Location: 8, Stage: 8},  // Metsalaane
	6549.94677734375: {Location: 8, Stage: 9},  // Vahessaare
	6237.77734375:    {Location: 8, Stage: 10}, // Külaaseme
	5973.14990234375: {Location: 8, Stage: 11}, // Vissi
	6022.7451171875:  {Location: 8, Stage: 12}, // Vellavere
	// 09.SECTO Rally Finland
	11414.5859375:    {Location: 9, Stage: 1},  // Leustu
	11329.416015625:  {Location: 9, Stage: 2},  // Lahdenkylä
	5151.962890625:   {Location: 9, Stage: 3},  // Saakoski
	5057.02197265625: {Location: 9, Stage: 4},  // Maahi
	6737.29248046875: {Location: 9, Stage: 5},  // Painna
	6467.689453125:   {Location: 9, Stage: 6},  // Peltola
	23354.720703125:  {Location: 9, Stage: 7},  // Päijälä
	23216.017578125:  {Location: 9, Stage: 8},  // Ruokolahti
	10862.580078125:  {Location: 9, Stage: 9},  // Honkanen
	10670.9384765625: {Location: 9, Stage: 10}, // Venkajärvi
	12889.9365234375: {Location: 9, Stage: 11}, // Vehmas
	12827.0439453125: {Location: 9, Stage: 12}, // Hatanpää
	// 10.EKO ACROPOLIS Rally Greece
	24990.927734375:  {Location: 10, Stage: 1},  // Gravia
	24989.751953125:  {Location: 10, Stage: 2},  // Prosilio
	13848.80859375:   {Location: 10, Stage: 3},  // Mariolata
	13832.6533203125: {Location: 10, Stage: 4},  // Karoutes
	11475.8349609375: {Location: 10, Stage: 5},  // Viniani
	11468.4091796875: {Location: 10, Stage: 6},  // Delphi
	10721.888671875:  {Location: 10, Stage: 7},  // Eptalofos
	10703.537109375:  {Location: 10, Stage: 8},  // Lilea
	5906.15625:       {Location: 10, Stage: 9},  // Parnassós
	5884.07763671875: {Location: 10, Stage: 10}, // Bauxites
	9025.0712890625:  {Location: 10, Stage: 11}, // Drosochori
	9025.2080078125:  {Location: 10, Stage: 12}, // Amfissa
	// 11.BIO BIO Rally Chile
	35043.18359375:   {Location: 11, Stage: 1},  // Bio Bío
	35115.52734375:   {Location: 11, Stage: 2},  // Pulpería
	18300.140625:     {Location: 11, Stage: 3},  // Río Lía
	17057.689453125:  {Location: 11, Stage: 4},  // María Las Cruces
	17205.98828125:   {Location: 11, Stage: 5},  // Las Paraguas
	11114.083984375:  {Location: 11, Stage: 6},  // Rere
	10402.248046875:  {Location: 11, Stage: 7},  // El Poñen
	8197.9619140625:  {Location: 11, Stage: 8},  // Laja
	8075.86572265625: {Location: 11, Stage: 9},  // Yumbel
	8551.7421875:     {Location: 11, Stage: 10}, // Río Claro
	8425.1728515625:  {Location: 11, Stage: 11}, // Hualqui
	8840.3115234375:  {Location: 11, Stage: 12}, // Chivilingo
	// 12.Central Europe Rally
	32702.908203125:  {Location: 12, Stage: 1},  // Rouské
	32679.244140625:  {Location: 12, Stage: 2},  // Lukoveček
	15779.5947265625: {Location: 12, Stage: 3},  // Raztoka
	15770.38671875:   {Location: 12, Stage: 4},  // Žabárna
	17328.599609375:  {Location: 12, Stage: 5},  // Provodovice
	17310.33203125:   {Location: 12, Stage: 6},  // Chvalčov
	9173.345703125:   {Location: 12, Stage: 7},  // Vítová
	9098.77734375:    {Location: 12, Stage: 8},  // Brusné
	15078.583984375:  {Location: 12, Stage: 9},  // Libosváry
	14987.3271484375: {Location: 12, Stage: 10}, // Rusava
	9267.7421875:     {Location: 12, Stage: 11}, // Osíčko
	8979.5126953125:  {Location: 12, Stage: 12}, // Příkazy
	// 13.Forum8 Rally Japan
	20209.443359375:  {Location: 13, Stage: 1},  // Lake Mikawa
	20237.0234375:    {Location: 13, Stage: 2},  // Kudarisawa
	11782.9990234375: {Location: 13, Stage: 3},  // Oninotaira
	11723.8271484375: {Location: 13, Stage: 4},  // Okuwacho
	10608.0771484375: {Location: 13, Stage: 5},  // Habu Dam
	10629.9638671875: {Location: 13, Stage: 6},  // new：Habucho
	13664.8837890625: {Location: 13, Stage: 7},  // Nenoue Plateau
	14124.6884765625: {Location: 13, Stage: 8},  // Tegano
	7321.4169921875:  {Location: 13, Stage: 9},  // Higashino
	7312.6826171875:  {Location: 13, Stage: 10}, // Hokono Lake
	6734.7861328125:  {Location: 13, Stage: 11}, // Nenoue Highlands
	7184.89013671875: {Location: 13, Stage: 12}, // Nakatsugawa
	// 14.Rally Mediterraneo
	29517.841796875:  {Location: 14, Stage: 1},  // Asco
	15444.12109375:   {Location: 14, Stage: 3},  // Monte Cinto
	16482.353515625:  {Location: 14, Stage: 4},  // Albarello
	20774.0390625:    {Location: 14, Stage: 5},  // Canpannace
	7982.541015625:   {Location: 14, Stage: 6},  // Serra Di Cuzzioli
	8828.4140625:     {Location: 14, Stage: 7},  // Maririe
	8782.9814453125:  {Location: 14, Stage: 8},  // Poggiola
	11075.619140625:  {Location: 14, Stage: 9},  // Monte Alloradu
	9752.8134765625:  {Location: 14, Stage: 10}, // Ravin de Finelio
	10414.5029296875: {Location: 14, Stage: 11}, // Cabanella
	11520.50390625:   {Location: 14, Stage: 12}, // Moltifao
	// 15.Agon By AOC Rally Pacifico
	31759.525391:     {Location: 15, Stage: 1},  // Talao
	32729.640625:     {Location: 15, Stage: 2},  // Talanghilirair
	14928.204102:     {Location: 15, Stage: 3},  // SungaiKunit
	15890.509766:     {Location: 15, Stage: 4},  // Sangir Balai Janggo
	17184.585938:     {Location: 15, Stage: 5},  // South Solok
	9023.762695:      {Location: 15, Stage: 6},  // Kebun Raya Solok
	9079.655273:      {Location: 15, Stage: 7},  // Batukangkung
	5712.67041015625: {Location: 15, Stage: 8},  // Abai
	6709.298828125:   {Location: 15, Stage: 9},  // Moearaikoer
	8058.00634765625: {Location: 15, Stage: 10}, // Bidaralam
	8046.633301:      {Location: 15, Stage: 11}, // Loeboekmalaka
	9444.4287109375:  {Location: 15, Stage: 12}, // Gunung Tujuh
	// 16.Fanatec Rally Oceania
	11336.53125:      {Location: 16, Stage: 1},  // Oakleigh
	11341.740234:     {Location: 16, Stage: 2},  // Doctors Hill
	7023.32177734375: {Location: 16, Stage: 3},  // Mangapai
	6983.908203125:   {Location: 16, Stage: 4},  // Brynderwyn
	4719.359863:      {Location: 16, Stage: 5},  // Taipuha
	4698.243164:      {Location: 16, Stage: 6},  // Mareretu
	18381.791016:     {Location: 16, Stage: 7},  // Waiwera
	18045.710938:     {Location: 16, Stage: 8},  // Tahekeroa
	9863.051758:      {Location: 16, Stage: 9},  // Noakes Hill
	9625.2822265625:  {Location: 16, Stage: 10}, // Orewa
	8901.7470703125:  {Location: 16, Stage: 11}, // Tahekeroa - Orewa
	8987.585938:      {Location: 16, Stage: 12}, // Makarau
	// 17.Rally Scandia
	31230.755859375: {Location: 17, Stage: 1},  // Holtjønn
	32164.1796875:   {Location: 17, Stage: 2},  // Hengeltjønn
	17404.24609375:  {Location: 17, Stage: 3},  // Fyresvatn
	17145.505859:    {Location: 17, Stage: 4},  // Russvatn
	14050.787109:    {Location: 17, Stage: 5},  // Tovsli
	6937.629883:     {Location: 17, Stage: 6},  // Kottjønn
	6382.789551:     {Location: 17, Stage: 7},  // Fordol
	5756.9423828125: {Location: 17, Stage: 8},  // Fyresdal
	9702.848633:     {Location: 17, Stage: 9},  // Ljosdalstjønn
	9580.297852:     {Location: 17, Stage: 10}, // Dagtrolltjønn
	7820.630859:     {Location: 17, Stage: 11}, // Tovslioytjorn
	7623.759766:     {Location: 17, Stage: 12}, // Bergsøytjønn
	// 18.Rally Iberia
	19315.458984375:  {Location: 18, Stage: 1},  // Santes Creus
	19315.480469:     {Location: 18, Stage: 2},  // Valldossera
	10071.61328125:   {Location: 18, Stage: 3},  // Campdasens
	10075.623046875:  {Location: 18, Stage: 4},  // Pontils
	9583.832031:      {Location: 18, Stage: 5},  // Montagut
	9591.928711:      {Location: 18, Stage: 6},  // Aiguamúrcia
	16637.242188:     {Location: 18, Stage: 7},  // Alforja
	16619.099609:     {Location: 18, Stage: 8},  // Les Irles
	9282.355469:      {Location: 18, Stage: 9},  // L'Argentera
	9282.786133:      {Location: 18, Stage: 10}, // Les Voltes
	7665.740723:      {Location: 18, Stage: 11}, // Montclar
	7663.49072265625: {Location: 18, Stage: 12}, // Botareli
}

// ByLength resolves a stage from the stage length carried by a telemetry
// packet. Stage lengths are exact float64 values as sent by the game.
func ByLength(length float64) (domain.Stage, bool) {
	id, ok := stageLengths[length]
	if !ok {
		return domain.Stage{}, false
	}
	return Lookup(id)
}
