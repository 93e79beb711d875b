package project

// wordList is a condensed passphrase word list in the spirit of the EFF
// long wordlist (https://www.eff.org/deeplinks/2016/07/new-wordlists-random-passphrases):
// short, unambiguous, easy-to-type English words with no near-homophones.
// It is intentionally much smaller than EFF's 7,776-word list; passphrase
// entropy here comes from word count (see GeneratePassphrase), not list
// size alone.
var wordList = []string{
	"abacus", "abdomen", "ability", "abroad", "absence", "absorb", "abstract",
	"academy", "accent", "accept", "access", "accident", "account", "accuse",
	"achieve", "acid", "acorn", "acquire", "acre", "acrobat", "action",
	"active", "actor", "actual", "adapt", "add", "address", "adjust",
	"admiral", "adopt", "adult", "advance", "advice", "aerobic", "affair",
	"afford", "afraid", "again", "agenda", "agent", "agree", "ahead",
	"aim", "air", "airport", "aisle", "alarm", "album", "alcohol", "alert",
	"alien", "alley", "allow", "almost", "alone", "alpha", "already", "also",
	"alter", "always", "amateur", "amazing", "among", "amount", "amused",
	"analyst", "anchor", "ancient", "anger", "angle", "angry", "animal",
	"ankle", "announce", "annual", "another", "answer", "antenna", "antique",
	"anxiety", "apart", "apology", "appear", "apple", "approve", "april",
	"arch", "arctic", "area", "arena", "argue", "arm", "armor", "army",
	"around", "arrange", "arrest", "arrive", "arrow", "art", "artist",
	"artwork", "aspect", "assault", "asset", "assist", "assume", "asthma",
	"athlete", "atom", "attack", "attend", "attitude", "attract", "auction",
	"audit", "august", "aunt", "author", "auto", "autumn", "average",
	"avocado", "avoid", "awake", "aware", "away", "awesome", "awful",
	"awkward", "axis", "baby", "bachelor", "bacon", "badge", "bag",
	"balance", "balcony", "ball", "bamboo", "banana", "banner", "barely",
	"bargain", "barrel", "base", "basic", "basket", "battle", "beach",
	"bean", "beauty", "because", "become", "beef", "before", "begin",
	"behave", "behind", "believe", "below", "belt", "bench", "benefit",
	"best", "betray", "better", "between", "beyond", "bicycle", "bid",
	"bike", "bind", "biology", "bird", "birth", "bitter", "black", "blade",
	"blame", "blanket", "blast", "bleak", "bless", "blind", "blood",
	"blossom", "blouse", "blue", "blur", "blush", "board", "boat", "body",
	"boil", "bomb", "bonus", "book", "boost", "border", "boring", "borrow",
	"boss", "bottom", "bounce", "box", "boy", "bracket", "brain", "brand",
	"brass", "brave", "bread", "breeze", "brick", "bridge", "brief",
	"bright", "bring", "brisk", "broccoli", "broken", "bronze", "broom",
	"brother", "brown", "brush", "bubble", "buddy", "budget", "buffalo",
	"build", "bulb", "bulk", "bullet", "bundle", "bunker", "burden",
	"burger", "burst", "bus", "business", "busy", "butter", "buyer",
	"buzz", "cabbage", "cabin", "cable", "cactus", "cage", "cake", "call",
	"calm", "camera", "camp", "canal", "cancel", "candy", "cannon", "canoe",
	"canvas", "canyon", "capable", "capital", "captain", "car", "carbon",
	"card", "cargo", "carpet", "carry", "cart", "case", "cash", "casino",
	"castle", "casual", "catalog", "catch", "category", "cattle", "caught",
	"cause", "caution", "cave", "ceiling", "celery", "cement", "census",
	"century", "cereal", "certain", "chair", "chalk", "champion", "change",
	"chaos", "chapter", "charge", "chase", "chat", "cheap", "check",
	"cheese", "chef", "cherry", "chest", "chicken", "chief", "child",
	"chimney", "choice", "choose", "chronic", "chuckle", "chunk", "churn",
	"cigar", "cinnamon", "circle", "citizen", "city", "civil", "claim",
	"clap", "clarify", "claw", "clay", "clean", "clerk", "clever", "click",
	"client", "cliff", "climb", "clinic", "clip", "clock", "close", "cloth",
	"cloud", "clown", "club", "clump", "cluster", "clutch", "coach",
	"coast", "coconut", "code", "coffee", "coil", "coin", "collect",
	"color", "column", "combine", "comfort", "comic", "common", "company",
}
