package script

// entry is the ISO 15924 code of one Unicode script plus its registered aliases
type entry struct {
	code    Tag
	aliases []Tag
}

// codes maps Unicode long script names (the keys of unicode.Scripts) to ISO 15924.
// Aliases come from PropertyValueAliases.txt
var codes = map[string]entry{
	"Adlam":                  {code: "Adlm"},
	"Ahom":                   {code: "Ahom"},
	"Anatolian_Hieroglyphs":  {code: "Hluw"},
	"Arabic":                 {code: "Arab"},
	"Armenian":               {code: "Armn"},
	"Avestan":                {code: "Avst"},
	"Balinese":               {code: "Bali"},
	"Bamum":                  {code: "Bamu"},
	"Bassa_Vah":              {code: "Bass"},
	"Batak":                  {code: "Batk"},
	"Bengali":                {code: "Beng"},
	"Bhaiksuki":              {code: "Bhks"},
	"Bopomofo":               {code: "Bopo"},
	"Brahmi":                 {code: "Brah"},
	"Braille":                {code: "Brai"},
	"Buginese":               {code: "Bugi"},
	"Buhid":                  {code: "Buhd"},
	"Canadian_Aboriginal":    {code: "Cans"},
	"Carian":                 {code: "Cari"},
	"Caucasian_Albanian":     {code: "Aghb"},
	"Chakma":                 {code: "Cakm"},
	"Cham":                   {code: "Cham"},
	"Cherokee":               {code: "Cher"},
	"Chorasmian":             {code: "Chrs"},
	"Common":                 {code: Common},
	"Coptic":                 {code: "Copt", aliases: []Tag{"Qaac"}},
	"Cuneiform":              {code: "Xsux"},
	"Cypriot":                {code: "Cprt"},
	"Cypro_Minoan":           {code: "Cpmn"},
	"Cyrillic":               {code: "Cyrl"},
	"Deseret":                {code: "Dsrt"},
	"Devanagari":             {code: "Deva"},
	"Dives_Akuru":            {code: "Diak"},
	"Dogra":                  {code: "Dogr"},
	"Duployan":               {code: "Dupl"},
	"Egyptian_Hieroglyphs":   {code: "Egyp"},
	"Elbasan":                {code: "Elba"},
	"Elymaic":                {code: "Elym"},
	"Ethiopic":               {code: "Ethi"},
	"Garay":                  {code: "Gara"},
	"Georgian":               {code: "Geor"},
	"Glagolitic":             {code: "Glag"},
	"Gothic":                 {code: "Goth"},
	"Grantha":                {code: "Gran"},
	"Greek":                  {code: "Grek"},
	"Gujarati":               {code: "Gujr"},
	"Gunjala_Gondi":          {code: "Gong"},
	"Gurmukhi":               {code: "Guru"},
	"Gurung_Khema":           {code: "Gukh"},
	"Han":                    {code: "Hani"},
	"Hangul":                 {code: "Hang"},
	"Hanifi_Rohingya":        {code: "Rohg"},
	"Hanunoo":                {code: "Hano"},
	"Hatran":                 {code: "Hatr"},
	"Hebrew":                 {code: "Hebr"},
	"Hiragana":               {code: "Hira"},
	"Imperial_Aramaic":       {code: "Armi"},
	"Inherited":              {code: Inherited, aliases: []Tag{"Qaai"}},
	"Inscriptional_Pahlavi":  {code: "Phli"},
	"Inscriptional_Parthian": {code: "Prti"},
	"Javanese":               {code: "Java"},
	"Kaithi":                 {code: "Kthi"},
	"Kannada":                {code: "Knda"},
	"Katakana":               {code: "Kana"},
	"Kawi":                   {code: "Kawi"},
	"Kayah_Li":               {code: "Kali"},
	"Kharoshthi":             {code: "Khar"},
	"Khitan_Small_Script":    {code: "Kits"},
	"Khmer":                  {code: "Khmr"},
	"Khojki":                 {code: "Khoj"},
	"Khudawadi":              {code: "Sind"},
	"Kirat_Rai":              {code: "Krai"},
	"Lao":                    {code: "Laoo"},
	"Latin":                  {code: "Latn"},
	"Lepcha":                 {code: "Lepc"},
	"Limbu":                  {code: "Limb"},
	"Linear_A":               {code: "Lina"},
	"Linear_B":               {code: "Linb"},
	"Lisu":                   {code: "Lisu"},
	"Lycian":                 {code: "Lyci"},
	"Lydian":                 {code: "Lydi"},
	"Mahajani":               {code: "Mahj"},
	"Makasar":                {code: "Maka"},
	"Malayalam":              {code: "Mlym"},
	"Mandaic":                {code: "Mand"},
	"Manichaean":             {code: "Mani"},
	"Marchen":                {code: "Marc"},
	"Masaram_Gondi":          {code: "Gonm"},
	"Medefaidrin":            {code: "Medf"},
	"Meetei_Mayek":           {code: "Mtei"},
	"Mende_Kikakui":          {code: "Mend"},
	"Meroitic_Cursive":       {code: "Merc"},
	"Meroitic_Hieroglyphs":   {code: "Mero"},
	"Miao":                   {code: "Plrd"},
	"Modi":                   {code: "Modi"},
	"Mongolian":              {code: "Mong"},
	"Mro":                    {code: "Mroo"},
	"Multani":                {code: "Mult"},
	"Myanmar":                {code: "Mymr"},
	"Nabataean":              {code: "Nbat"},
	"Nag_Mundari":            {code: "Nagm"},
	"Nandinagari":            {code: "Nand"},
	"New_Tai_Lue":            {code: "Talu"},
	"Newa":                   {code: "Newa"},
	"Nko":                    {code: "Nkoo"},
	"Nushu":                  {code: "Nshu"},
	"Nyiakeng_Puachue_Hmong": {code: "Hmnp"},
	"Ogham":                  {code: "Ogam"},
	"Ol_Chiki":               {code: "Olck"},
	"Ol_Onal":                {code: "Onao"},
	"Old_Hungarian":          {code: "Hung"},
	"Old_Italic":             {code: "Ital"},
	"Old_North_Arabian":      {code: "Narb"},
	"Old_Permic":             {code: "Perm"},
	"Old_Persian":            {code: "Xpeo"},
	"Old_Sogdian":            {code: "Sogo"},
	"Old_South_Arabian":      {code: "Sarb"},
	"Old_Turkic":             {code: "Orkh"},
	"Old_Uyghur":             {code: "Ougr"},
	"Oriya":                  {code: "Orya"},
	"Osage":                  {code: "Osge"},
	"Osmanya":                {code: "Osma"},
	"Pahawh_Hmong":           {code: "Hmng"},
	"Palmyrene":              {code: "Palm"},
	"Pau_Cin_Hau":            {code: "Pauc"},
	"Phags_Pa":               {code: "Phag"},
	"Phoenician":             {code: "Phnx"},
	"Psalter_Pahlavi":        {code: "Phlp"},
	"Rejang":                 {code: "Rjng"},
	"Runic":                  {code: "Runr"},
	"Samaritan":              {code: "Samr"},
	"Saurashtra":             {code: "Saur"},
	"Sharada":                {code: "Shrd"},
	"Shavian":                {code: "Shaw"},
	"Siddham":                {code: "Sidd"},
	"SignWriting":            {code: "Sgnw"},
	"Sinhala":                {code: "Sinh"},
	"Sogdian":                {code: "Sogd"},
	"Sora_Sompeng":           {code: "Sora"},
	"Soyombo":                {code: "Soyo"},
	"Sundanese":              {code: "Sund"},
	"Sunuwar":                {code: "Sunu"},
	"Syloti_Nagri":           {code: "Sylo"},
	"Syriac":                 {code: "Syrc"},
	"Tagalog":                {code: "Tglg"},
	"Tagbanwa":               {code: "Tagb"},
	"Tai_Le":                 {code: "Tale"},
	"Tai_Tham":               {code: "Lana"},
	"Tai_Viet":               {code: "Tavt"},
	"Takri":                  {code: "Takr"},
	"Tamil":                  {code: "Taml"},
	"Tangsa":                 {code: "Tnsa"},
	"Tangut":                 {code: "Tang"},
	"Telugu":                 {code: "Telu"},
	"Thaana":                 {code: "Thaa"},
	"Thai":                   {code: "Thai"},
	"Tibetan":                {code: "Tibt"},
	"Tifinagh":               {code: "Tfng"},
	"Tirhuta":                {code: "Tirh"},
	"Todhri":                 {code: "Todr"},
	"Toto":                   {code: "Toto"},
	"Tulu_Tigalari":          {code: "Tutg"},
	"Ugaritic":               {code: "Ugar"},
	"Unknown":                {code: Unknown},
	"Vai":                    {code: "Vaii"},
	"Vithkuqi":               {code: "Vith"},
	"Wancho":                 {code: "Wcho"},
	"Warang_Citi":            {code: "Wara"},
	"Yezidi":                 {code: "Yezi"},
	"Yi":                     {code: "Yiii"},
	"Zanabazar_Square":       {code: "Zanb"},
}
