package staticdata

import "broodcore/pkg/domain"

// colours is the colour wheel in on-site adjacency order. THE ORDER IS THE
// DATA: position 0 neighbours position 180 on the circle, and every range
// computation reads adjacency straight from this sequence. Never sort or
// reorder. On-site IDs are sparse because colours were released in waves.
var colours = []domain.Colour{
	{Name: "Maize", OnSiteID: 2, Hex: "fffdea"},
	{Name: "Cream", OnSiteID: 3, Hex: "ffefdc"},
	{Name: "Antique", OnSiteID: 4, Hex: "d6cdb1"},
	{Name: "White", OnSiteID: 5, Hex: "ffffff"},
	{Name: "Moon", OnSiteID: 6, Hex: "d8d7d8"},
	{Name: "Ice", OnSiteID: 7, Hex: "ebefff"},
	{Name: "Orca", OnSiteID: 8, Hex: "e0dfff"},
	{Name: "Platinum", OnSiteID: 9, Hex: "c8bece"},
	{Name: "Silver", OnSiteID: 10, Hex: "bbbabf"},
	{Name: "Dust", OnSiteID: 11, Hex: "9c9c9e"},
	{Name: "Grey", OnSiteID: 12, Hex: "808080"},
	{Name: "Smoke", OnSiteID: 13, Hex: "9494a9"},
	{Name: "Gloom", OnSiteID: 14, Hex: "535264"},
	{Name: "Lead", OnSiteID: 15, Hex: "413c3f"},
	{Name: "Shale", OnSiteID: 16, Hex: "4d4850"},
	{Name: "Flint", OnSiteID: 17, Hex: "626268"},
	{Name: "Charcoal", OnSiteID: 18, Hex: "45434b"},
	{Name: "Coal", OnSiteID: 19, Hex: "121212"},
	{Name: "Oilslick", OnSiteID: 20, Hex: "342b25"},
	{Name: "Black", OnSiteID: 21, Hex: "252525"},
	{Name: "Obsidian", OnSiteID: 22, Hex: "1e1130"},
	{Name: "Eldritch", OnSiteID: 23, Hex: "1b3a36"},
	{Name: "Midnight", OnSiteID: 24, Hex: "252a50"},
	{Name: "Shadow", OnSiteID: 25, Hex: "3a2e44"},
	{Name: "Blackberry", OnSiteID: 26, Hex: "4b294f"},
	{Name: "Mulberry", OnSiteID: 27, Hex: "6e235d"},
	{Name: "Plum", OnSiteID: 28, Hex: "853390"},
	{Name: "Wisteria", OnSiteID: 29, Hex: "724e7b"},
	{Name: "Thistle", OnSiteID: 30, Hex: "8f7c8b"},
	{Name: "Fog", OnSiteID: 31, Hex: "a593b0"},
	{Name: "Mist", OnSiteID: 32, Hex: "e1ceff"},
	{Name: "Lavender", OnSiteID: 33, Hex: "cca4e0"},
	{Name: "Heather", OnSiteID: 34, Hex: "cda9ff"},
	{Name: "Purple", OnSiteID: 35, Hex: "a261cf"},
	{Name: "Orchid", OnSiteID: 36, Hex: "da4fff"},
	{Name: "Amethyst", OnSiteID: 37, Hex: "993bd0"},
	{Name: "Nightshade", OnSiteID: 38, Hex: "782eb2"},
	{Name: "Violet", OnSiteID: 39, Hex: "643f9c"},
	{Name: "Grape", OnSiteID: 40, Hex: "570fc0"},
	{Name: "Royal", OnSiteID: 41, Hex: "4d2c89"},
	{Name: "Eggplant", OnSiteID: 42, Hex: "332b65"},
	{Name: "Iris", OnSiteID: 43, Hex: "535195"},
	{Name: "Storm", OnSiteID: 44, Hex: "757adb"},
	{Name: "Twilight", OnSiteID: 45, Hex: "474aa0"},
	{Name: "Indigo", OnSiteID: 46, Hex: "2d237a"},
	{Name: "Sapphire", OnSiteID: 47, Hex: "0d095b"},
	{Name: "Navy", OnSiteID: 48, Hex: "212b5f"},
	{Name: "Cobalt", OnSiteID: 49, Hex: "003484"},
	{Name: "Peacock", OnSiteID: 50, Hex: "1c6ca8"},
	{Name: "Cerulean", OnSiteID: 51, Hex: "2d77a8"},
	{Name: "Blue", OnSiteID: 60, Hex: "2d69c8"},
	{Name: "Azure", OnSiteID: 61, Hex: "3aa0f2"},
	{Name: "Caribbean", OnSiteID: 62, Hex: "55c8f0"},
	{Name: "Teal", OnSiteID: 63, Hex: "008aa8"},
	{Name: "Cyan", OnSiteID: 64, Hex: "00fff0"},
	{Name: "Robin", OnSiteID: 65, Hex: "aadff8"},
	{Name: "Aqua", OnSiteID: 66, Hex: "72e2e5"},
	{Name: "Turquoise", OnSiteID: 67, Hex: "3aa795"},
	{Name: "Spruce", OnSiteID: 68, Hex: "286661"},
	{Name: "Emerald", OnSiteID: 69, Hex: "20603f"},
	{Name: "Shamrock", OnSiteID: 70, Hex: "236925"},
	{Name: "Jade", OnSiteID: 71, Hex: "61b777"},
	{Name: "Algae", OnSiteID: 72, Hex: "4ea24c"},
	{Name: "Swamp", OnSiteID: 73, Hex: "687f43"},
	{Name: "Avocado", OnSiteID: 74, Hex: "567c34"},
	{Name: "Green", OnSiteID: 75, Hex: "629c3f"},
	{Name: "Fern", OnSiteID: 76, Hex: "7ece73"},
	{Name: "Forest", OnSiteID: 77, Hex: "258947"},
	{Name: "Camo", OnSiteID: 78, Hex: "7f8d57"},
	{Name: "Murk", OnSiteID: 79, Hex: "4b5a37"},
	{Name: "Sludge", OnSiteID: 80, Hex: "454f32"},
	{Name: "Asparagus", OnSiteID: 81, Hex: "8a9b49"},
	{Name: "Field", OnSiteID: 82, Hex: "81a954"},
	{Name: "Jungle", OnSiteID: 83, Hex: "7cbb30"},
	{Name: "Keel", OnSiteID: 84, Hex: "2b8748"},
	{Name: "Lagoon", OnSiteID: 85, Hex: "41a383"},
	{Name: "Seafoam", OnSiteID: 86, Hex: "92b983"},
	{Name: "Spring", OnSiteID: 87, Hex: "a3e052"},
	{Name: "Mint", OnSiteID: 88, Hex: "9affc7"},
	{Name: "Honeydew", OnSiteID: 89, Hex: "c5ffbc"},
	{Name: "Chartreuse", OnSiteID: 90, Hex: "d4ff82"},
	{Name: "Lime", OnSiteID: 91, Hex: "b0ff6b"},
	{Name: "Pear", OnSiteID: 92, Hex: "cce369"},
	{Name: "Citron", OnSiteID: 93, Hex: "ddff70"},
	{Name: "Willow", OnSiteID: 94, Hex: "a7c385"},
	{Name: "Sage", OnSiteID: 95, Hex: "94a681"},
	{Name: "Celery", OnSiteID: 96, Hex: "9fc377"},
	{Name: "Moss", OnSiteID: 97, Hex: "666b3d"},
	{Name: "Olive", OnSiteID: 98, Hex: "2f3c15"},
	{Name: "Artichoke", OnSiteID: 99, Hex: "5e7241"},
	{Name: "Laurel", OnSiteID: 100, Hex: "637c4f"},
	{Name: "Matcha", OnSiteID: 101, Hex: "a7b457"},
	{Name: "Wasabi", OnSiteID: 102, Hex: "bccf4e"},
	{Name: "Absinthe", OnSiteID: 103, Hex: "cde364"},
	{Name: "Apple", OnSiteID: 104, Hex: "b9d850"},
	{Name: "Sprout", OnSiteID: 105, Hex: "99c552"},
	{Name: "Juniper", OnSiteID: 106, Hex: "3a5e4a"},
	{Name: "Clover", OnSiteID: 107, Hex: "61a53f"},
	{Name: "Peridot", OnSiteID: 108, Hex: "e6ef48"},
	{Name: "Citrine", OnSiteID: 109, Hex: "e8d84b"},
	{Name: "Lemon", OnSiteID: 110, Hex: "fff644"},
	{Name: "Banana", OnSiteID: 111, Hex: "ffec80"},
	{Name: "Butter", OnSiteID: 112, Hex: "fffdcf"},
	{Name: "Canary", OnSiteID: 113, Hex: "ffe839"},
	{Name: "Gold", OnSiteID: 114, Hex: "fde295"},
	{Name: "Honey", OnSiteID: 115, Hex: "d1b300"},
	{Name: "Saffron", OnSiteID: 116, Hex: "ffce2e"},
	{Name: "Sunshine", OnSiteID: 117, Hex: "ffb53c"},
	{Name: "Marigold", OnSiteID: 118, Hex: "ff9e3d"},
	{Name: "Amber", OnSiteID: 119, Hex: "c18e2f"},
	{Name: "Goldenrod", OnSiteID: 120, Hex: "daa520"},
	{Name: "Dark Goldenrod", OnSiteID: 121, Hex: "b8860b"},
	{Name: "Flaxen", OnSiteID: 122, Hex: "fff0bc"},
	{Name: "Ivory", OnSiteID: 123, Hex: "fffbe2"},
	{Name: "Sanddollar", OnSiteID: 124, Hex: "ebe6d6"},
	{Name: "Fawn", OnSiteID: 125, Hex: "cdbb9c"},
	{Name: "Tan", OnSiteID: 126, Hex: "b9a379"},
	{Name: "Beige", OnSiteID: 127, Hex: "d3c3a2"},
	{Name: "Stone", OnSiteID: 128, Hex: "9a927e"},
	{Name: "Latte", OnSiteID: 129, Hex: "c0a47f"},
	{Name: "Caramel", OnSiteID: 145, Hex: "c69d5e"},
	{Name: "Taupe", OnSiteID: 146, Hex: "8c7d6a"},
	{Name: "Umber", OnSiteID: 147, Hex: "6a4e34"},
	{Name: "Sable", OnSiteID: 148, Hex: "4a3621"},
	{Name: "Sepia", OnSiteID: 149, Hex: "7d5a3c"},
	{Name: "Chocolate", OnSiteID: 150, Hex: "4e2f17"},
	{Name: "Walnut", OnSiteID: 151, Hex: "5b3f27"},
	{Name: "Hickory", OnSiteID: 152, Hex: "3e2b19"},
	{Name: "Mahogany", OnSiteID: 153, Hex: "6e2b12"},
	{Name: "Russet", OnSiteID: 154, Hex: "7f3b22"},
	{Name: "Rust", OnSiteID: 155, Hex: "a8401c"},
	{Name: "Auburn", OnSiteID: 156, Hex: "8f2b13"},
	{Name: "Brick", OnSiteID: 157, Hex: "aa402c"},
	{Name: "Terracotta", OnSiteID: 158, Hex: "c66b3d"},
	{Name: "Clay", OnSiteID: 159, Hex: "ba6b49"},
	{Name: "Cinnamon", OnSiteID: 160, Hex: "b55a24"},
	{Name: "Pumpkin", OnSiteID: 161, Hex: "ff8546"},
	{Name: "Tangerine", OnSiteID: 162, Hex: "ff7c21"},
	{Name: "Carrot", OnSiteID: 163, Hex: "ed7621"},
	{Name: "Orange", OnSiteID: 164, Hex: "e4710f"},
	{Name: "Apricot", OnSiteID: 165, Hex: "ffa561"},
	{Name: "Cantaloupe", OnSiteID: 166, Hex: "ffb380"},
	{Name: "Peach", OnSiteID: 167, Hex: "ffc6a1"},
	{Name: "Coral", OnSiteID: 168, Hex: "ff8576"},
	{Name: "Fire", OnSiteID: 169, Hex: "d73800"},
	{Name: "Scarlet", OnSiteID: 170, Hex: "e82d17"},
	{Name: "Red", OnSiteID: 171, Hex: "da1d1d"},
	{Name: "Crimson", OnSiteID: 172, Hex: "b80f23"},
	{Name: "Maroon", OnSiteID: 173, Hex: "651925"},
	{Name: "Garnet", OnSiteID: 174, Hex: "7c142c"},
	{Name: "Wine", OnSiteID: 175, Hex: "843244"},
	{Name: "Berry", OnSiteID: 176, Hex: "8b2a54"},
	{Name: "Sanguine", OnSiteID: 177, Hex: "9e113f"},
	{Name: "Magenta", OnSiteID: 178, Hex: "e934aa"},
	{Name: "Fuchsia", OnSiteID: 179, Hex: "ec0089"},
	{Name: "Raspberry", OnSiteID: 180, Hex: "d32a5d"},
	{Name: "Cerise", OnSiteID: 181, Hex: "de0053"},
	{Name: "Strawberry", OnSiteID: 182, Hex: "f04e6c"},
	{Name: "Rose", OnSiteID: 183, Hex: "ff7394"},
	{Name: "Pink", OnSiteID: 184, Hex: "ffa5c0"},
	{Name: "Bubblegum", OnSiteID: 185, Hex: "ff8bc0"},
	{Name: "Blush", OnSiteID: 186, Hex: "ffc1c5"},
	{Name: "Carnation", OnSiteID: 187, Hex: "ffb2b6"},
	{Name: "Flamingo", OnSiteID: 188, Hex: "ff9c9e"},
	{Name: "Salmon", OnSiteID: 189, Hex: "ff997f"},
	{Name: "Watermelon", OnSiteID: 190, Hex: "ff5c71"},
	{Name: "Mauve", OnSiteID: 191, Hex: "a05c7c"},
	{Name: "Dusty Rose", OnSiteID: 192, Hex: "c27f8f"},
	{Name: "Petal", OnSiteID: 193, Hex: "ffd1dc"},
	{Name: "Taffy", OnSiteID: 194, Hex: "f7b8d2"},
	{Name: "Seashell", OnSiteID: 195, Hex: "ffd8c9"},
	{Name: "Champagne", OnSiteID: 196, Hex: "f3d4c7"},
	{Name: "Pearl", OnSiteID: 197, Hex: "f8f1e5"},
	{Name: "Oyster", OnSiteID: 198, Hex: "e4ded1"},
	{Name: "Linen", OnSiteID: 199, Hex: "f5ecda"},
	{Name: "Parchment", OnSiteID: 200, Hex: "ffe6b1"},
	{Name: "Vanilla", OnSiteID: 201, Hex: "fff3d8"},
	{Name: "Custard", OnSiteID: 202, Hex: "ffecb3"},
	{Name: "Bone", OnSiteID: 203, Hex: "eee5cf"},
	{Name: "Buttermilk", OnSiteID: 204, Hex: "fff8cf"},
	{Name: "Eggshell", OnSiteID: 205, Hex: "fdf5d8"},
}
