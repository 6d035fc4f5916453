package catalog

// builtinTools is the built-in game catalog, a curated subset of the full
// production catalog. Operators can replace it with LoadFile.
var builtinTools = []Tool{
	// Math
	{ID: "addition-race", Name: "Addition Race", Description: "Race against time to solve addition problems and improve mental math speed", Category: CategoryMath, Icon: "fas fa-plus", IsPopular: true, Href: "/games/addition-race"},
	{ID: "multiplication-master", Name: "Multiplication Master", Description: "Master multiplication tables with interactive practice and challenges", Category: CategoryMath, Icon: "fas fa-times", Href: "/games/multiplication-master"},
	{ID: "fraction-frenzy", Name: "Fraction Frenzy", Description: "Learn fractions through fun games and visual representations", Category: CategoryMath, Icon: "fas fa-divide", Href: "/games/fraction-frenzy"},
	{ID: "algebra-adventure", Name: "Algebra Adventure", Description: "Solve algebraic equations in an exciting adventure setting", Category: CategoryMath, Icon: "fas fa-square-root-alt", Href: "/games/algebra-adventure"},
	{ID: "geometry-quest", Name: "Geometry Quest", Description: "Explore shapes, angles, and spatial reasoning through interactive puzzles", Category: CategoryMath, Icon: "fas fa-shapes", Href: "/games/geometry-quest"},
	{ID: "number-ninja", Name: "Number Ninja", Description: "Slice through math problems with lightning-fast calculations", Category: CategoryMath, Icon: "fas fa-bolt", Href: "/games/number-ninja"},
	{ID: "decimal-detective", Name: "Decimal Detective", Description: "Investigate decimal mysteries and master decimal operations", Category: CategoryMath, Icon: "fas fa-search", Href: "/games/decimal-detective"},
	{ID: "percentage-puzzle", Name: "Percentage Puzzle", Description: "Solve percentage problems through engaging puzzle challenges", Category: CategoryMath, Icon: "fas fa-percentage", IsPopular: true, Href: "/games/percentage-calculator"},
	{ID: "statistics-showdown", Name: "Statistics Showdown", Description: "Battle with mean, median, mode, and probability concepts", Category: CategoryMath, Icon: "fas fa-chart-bar", Href: "/games/statistics-showdown"},
	{ID: "mental-math-marathon", Name: "Mental Math Marathon", Description: "Build mental calculation speed with timed exercises", Category: CategoryMath, Icon: "fas fa-running", Href: "/games/mental-math-marathon"},
	{ID: "prime-number-hunt", Name: "Prime Number Hunt", Description: "Hunt for prime numbers while learning number theory", Category: CategoryMath, Icon: "fas fa-target", Href: "/games/prime-number-hunt"},
	{ID: "equation-builder", Name: "Equation Builder", Description: "Build and solve equations using drag-and-drop mechanics", Category: CategoryMath, Icon: "fas fa-equals", Href: "/games/equation-builder"},

	// Science
	{ID: "periodic-table-quest", Name: "Periodic Table Quest", Description: "Explore chemical elements through interactive adventures", Category: CategoryScience, Icon: "fas fa-atom", IsPopular: true, Href: "/games/periodic-table-quest"},
	{ID: "physics-playground", Name: "Physics Playground", Description: "Learn physics principles through hands-on experiments", Category: CategoryScience, Icon: "fas fa-apple-alt", Href: "/games/physics-playground"},
	{ID: "biology-explorer", Name: "Biology Explorer", Description: "Discover life sciences through virtual laboratory experiences", Category: CategoryScience, Icon: "fas fa-dna", Href: "/games/biology-explorer"},
	{ID: "chemistry-lab", Name: "Chemistry Lab Simulator", Description: "Conduct safe virtual chemistry experiments and reactions", Category: CategoryScience, Icon: "fas fa-flask", Href: "/games/chemistry-lab"},
	{ID: "astronomy-adventure", Name: "Astronomy Adventure", Description: "Journey through space and learn about celestial bodies", Category: CategoryScience, Icon: "fas fa-rocket", Href: "/games/astronomy-adventure"},
	{ID: "ecosystem-builder", Name: "Ecosystem Builder", Description: "Create and balance natural ecosystems and food chains", Category: CategoryScience, Icon: "fas fa-leaf", Href: "/games/ecosystem-builder"},
	{ID: "energy-engineer", Name: "Energy Engineer", Description: "Learn about different energy sources and conservation", Category: CategoryScience, Icon: "fas fa-bolt", Href: "/games/energy-engineer"},
	{ID: "weather-wizard", Name: "Weather Wizard", Description: "Predict weather patterns and understand meteorology", Category: CategoryScience, Icon: "fas fa-cloud-rain", Href: "/games/weather-wizard"},
	{ID: "genetics-genius", Name: "Genetics Genius", Description: "Explore heredity, DNA, and genetic engineering concepts", Category: CategoryScience, Icon: "fas fa-dna", Href: "/games/genetics-genius"},
	{ID: "fossil-hunter", Name: "Fossil Hunter", Description: "Discover paleontology and evolution through fossil exploration", Category: CategoryScience, Icon: "fas fa-bone", Href: "/games/fossil-hunter"},
	{ID: "ocean-explorer", Name: "Ocean Explorer", Description: "Dive into marine biology and oceanography", Category: CategoryScience, Icon: "fas fa-water", Href: "/games/ocean-explorer"},
	{ID: "robotics-engineer", Name: "Robotics Engineer", Description: "Build and program robots while learning engineering", Category: CategoryScience, Icon: "fas fa-robot", Href: "/games/robotics-engineer"},

	// Language
	{ID: "vocabulary-builder", Name: "Vocabulary Builder", Description: "Learn new words through interactive games and quizzes", Category: CategoryLanguage, Icon: "fas fa-book", IsPopular: true, Href: "/games/vocabulary-builder"},
	{ID: "spelling-bee-champion", Name: "Spelling Bee Champion", Description: "Master spelling through progressive difficulty challenges", Category: CategoryLanguage, Icon: "fas fa-spell-check", Href: "/games/spelling-bee-champion"},
	{ID: "grammar-guardian", Name: "Grammar Guardian", Description: "Learn grammar rules through interactive story adventures", Category: CategoryLanguage, Icon: "fas fa-pen-fancy", Href: "/games/grammar-guardian"},
	{ID: "sentence-scramble", Name: "Sentence Scramble", Description: "Unscramble words and sentences to improve reading comprehension", Category: CategoryLanguage, Icon: "fas fa-random", Href: "/games/sentence-scramble"},
	{ID: "word-association", Name: "Word Association Challenge", Description: "Connect words through associations and build vocabulary networks", Category: CategoryLanguage, Icon: "fas fa-link", Href: "/games/word-association"},
	{ID: "reading-comprehension", Name: "Reading Comprehension Quest", Description: "Improve reading skills through engaging story-based challenges", Category: CategoryLanguage, Icon: "fas fa-book-reader", Href: "/games/reading-comprehension"},
	{ID: "rhyme-time", Name: "Rhyme Time", Description: "Learn rhyming patterns and phonics through musical games", Category: CategoryLanguage, Icon: "fas fa-music", Href: "/games/rhyme-time"},
	{ID: "synonym-detective", Name: "Synonym Detective", Description: "Hunt for synonyms and antonyms in word mystery adventures", Category: CategoryLanguage, Icon: "fas fa-search", Href: "/games/synonym-detective"},
	{ID: "story-builder", Name: "Story Builder", Description: "Construct stories using narrative elements and creative writing tools", Category: CategoryLanguage, Icon: "fas fa-pencil-alt", Href: "/games/story-builder"},
	{ID: "word-counter-game", Name: "Word Counter Challenge", Description: "Practice text analysis and word counting skills", Category: CategoryLanguage, Icon: "fas fa-calculator", IsPopular: true, Href: "/games/word-counter"},
	{ID: "punctuation-pro", Name: "Punctuation Pro", Description: "Master punctuation rules through interactive exercises", Category: CategoryLanguage, Icon: "fas fa-exclamation", Href: "/games/punctuation-pro"},
	{ID: "etymology-explorer", Name: "Etymology Explorer", Description: "Trace word histories and linguistic evolution through time", Category: CategoryLanguage, Icon: "fas fa-history", Href: "/games/etymology-explorer"},

	// Memory
	{ID: "memory-palace", Name: "Memory Palace Builder", Description: "Build memory palaces to enhance recall and memorization", Category: CategoryMemory, Icon: "fas fa-castle", IsPopular: true, Href: "/games/memory-palace"},
	{ID: "sequence-master", Name: "Sequence Master", Description: "Remember and repeat increasingly complex sequences", Category: CategoryMemory, Icon: "fas fa-list-ol", Href: "/games/sequence-master"},
	{ID: "face-name-champion", Name: "Face-Name Champion", Description: "Master the art of remembering names and faces", Category: CategoryMemory, Icon: "fas fa-user-friends", Href: "/games/face-name-champion"},
	{ID: "visual-memory-matrix", Name: "Visual Memory Matrix", Description: "Memorize positions in increasingly complex matrices", Category: CategoryMemory, Icon: "fas fa-border-all", Href: "/games/visual-memory-matrix"},
	{ID: "audio-memory-trainer", Name: "Audio Memory Trainer", Description: "Enhance auditory memory through sound sequences", Category: CategoryMemory, Icon: "fas fa-volume-up", Href: "/games/audio-memory-trainer"},
	{ID: "vocabulary-memorizer", Name: "Vocabulary Memorizer", Description: "Memorize vocabulary words using spaced repetition", Category: CategoryMemory, Icon: "fas fa-language", Href: "/games/vocabulary-memorizer"},
	{ID: "historical-dates", Name: "Historical Dates Memory", Description: "Memorize important historical dates and events", Category: CategoryMemory, Icon: "fas fa-history", Href: "/games/historical-dates"},
	{ID: "chunking-trainer", Name: "Chunking Trainer", Description: "Learn to break information into memorable chunks", Category: CategoryMemory, Icon: "fas fa-layer-group", Href: "/games/chunking-trainer"},
	{ID: "memory-speed-test", Name: "Memory Speed Test", Description: "Test and improve memory recall speed with time limits", Category: CategoryMemory, Icon: "fas fa-stopwatch", Href: "/games/memory-speed-test"},
	{ID: "memory-maze", Name: "Memory Maze Navigator", Description: "Navigate mazes using memory and spatial awareness", Category: CategoryMemory, Icon: "fas fa-route", Href: "/games/memory-maze"},

	// Logic
	{ID: "sudoku-solver", Name: "Sudoku Solver", Description: "Master sudoku puzzles with hints and solving techniques", Category: CategoryLogic, Icon: "fas fa-th", IsPopular: true, Href: "/games/sudoku-solver"},
	{ID: "chess-tactics-trainer", Name: "Chess Tactics Trainer", Description: "Improve chess strategy through tactical puzzles", Category: CategoryLogic, Icon: "fas fa-chess", Href: "/games/chess-tactics-trainer"},
	{ID: "logic-grid-puzzles", Name: "Logic Grid Puzzles", Description: "Solve deductive reasoning puzzles using logic grids", Category: CategoryLogic, Icon: "fas fa-border-all", Href: "/games/logic-grid-puzzles"},
	{ID: "brain-teasers", Name: "Brain Teasers Collection", Description: "Challenge yourself with mind-bending brain teasers", Category: CategoryLogic, Icon: "fas fa-brain", Href: "/games/brain-teasers"},
	{ID: "riddle-master", Name: "Riddle Master", Description: "Solve riddles and develop lateral thinking skills", Category: CategoryLogic, Icon: "fas fa-question-circle", Href: "/games/riddle-master"},
	{ID: "tower-of-hanoi", Name: "Tower of Hanoi Challenge", Description: "Master the classic recursive puzzle with multiple levels", Category: CategoryLogic, Icon: "fas fa-layer-group", Href: "/games/tower-of-hanoi"},
	{ID: "logic-circuits", Name: "Logic Circuits Builder", Description: "Learn boolean logic through interactive circuit building", Category: CategoryLogic, Icon: "fas fa-microchip", Href: "/games/logic-circuits"},
	{ID: "nonogram-painter", Name: "Nonogram Painter", Description: "Solve picture logic puzzles by painting grids", Category: CategoryLogic, Icon: "fas fa-paint-brush", Href: "/games/nonogram-painter"},
	{ID: "pattern-detective", Name: "Pattern Detective", Description: "Identify and complete complex logical patterns", Category: CategoryLogic, Icon: "fas fa-search", Href: "/games/pattern-detective"},
	{ID: "cryptogram-decoder", Name: "Cryptogram Decoder", Description: "Decode encrypted messages using logical analysis", Category: CategoryLogic, Icon: "fas fa-key", Href: "/games/cryptogram-decoder"},
	{ID: "truth-table-builder", Name: "Truth Table Builder", Description: "Build and analyze logical truth tables", Category: CategoryLogic, Icon: "fas fa-table", Href: "/games/truth-table-builder"},
	{ID: "lateral-thinking", Name: "Lateral Thinking Puzzles", Description: "Develop creative problem-solving through lateral thinking", Category: CategoryLogic, Icon: "fas fa-lightbulb", Href: "/games/lateral-thinking"},
}
